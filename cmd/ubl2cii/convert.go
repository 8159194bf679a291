package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	ublcii "github.com/sascha10000/en16931-ubl2cii"
)

// buildVersion is reported by the --version flag and the startup banner.
const buildVersion = "1.0.0"

type convertOpts struct {
	targetDir                string
	outputSuffix             string
	verbose                  bool
	disableWildcardExpansion bool
}

func convert() *convertOpts {
	return new(convertOpts)
}

func (c *convertOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ubl2cii [flags] <source files>",
		Short:   "UBL to CII converter for EN 16931 invoices",
		Version: buildVersion,
		Args:    cobra.MinimumNArgs(1),
		RunE:    c.runE,
	}

	flags := cmd.Flags()
	flags.StringVarP(&c.targetDir, "target", "t", ".", "The target directory for result output")
	flags.StringVar(&c.outputSuffix, "output-suffix", "-cii", "The suffix added to the output filename")
	flags.BoolVar(&c.verbose, "verbose", false, "Enable debug logging")
	flags.BoolVar(&c.disableWildcardExpansion, "disable-wildcard-expansion", false, "Disable wildcard expansion of filenames")

	return cmd
}

// runE converts every resolved source file. Per-file failures are logged and
// do not abort the run, matching batch usage where one broken file should
// not stop the rest.
func (c *convertOpts) runE(cmd *cobra.Command, args []string) error {
	if c.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Info().Str("version", buildVersion).Msg("starting UBL to CII converter")

	targetDir, err := filepath.Abs(c.targetDir)
	if err != nil {
		return fmt.Errorf("normalizing target directory: %w", err)
	}
	log.Debug().Str("dir", targetDir).Msg("using output directory")

	files, err := c.resolveInputFiles(args)
	if err != nil {
		return err
	}

	for _, file := range files {
		c.convertFile(file, targetDir)
	}
	return nil
}

// resolveInputFiles expands wildcard patterns and directories into the flat
// list of files to convert. Unreadable entries are logged and skipped.
func (c *convertOpts) resolveInputFiles(args []string) ([]string, error) {
	var candidates []string
	for _, arg := range args {
		if !c.disableWildcardExpansion && hasWildcard(arg) {
			log.Debug().Str("pattern", arg).Msg("resolving wildcards")
			matches, err := filepath.Glob(arg)
			if err != nil {
				return nil, fmt.Errorf("resolving pattern %q: %w", arg, err)
			}
			candidates = append(candidates, matches...)
		} else {
			candidates = append(candidates, arg)
		}
	}

	var ret []string
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil {
			log.Warn().Str("file", candidate).Msg("ignoring non-existing file")
			continue
		}

		if info.IsDir() {
			log.Debug().Str("dir", candidate).Msg("input is a directory")
			entries, err := os.ReadDir(candidate)
			if err != nil {
				return nil, fmt.Errorf("reading directory %q: %w", candidate, err)
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				path, err := filepath.Abs(filepath.Join(candidate, entry.Name()))
				if err != nil {
					return nil, err
				}
				log.Debug().Str("file", path).Msg("added file")
				ret = append(ret, path)
			}
			continue
		}

		path, err := filepath.Abs(candidate)
		if err != nil {
			return nil, err
		}
		ret = append(ret, path)
	}

	return ret, nil
}

func (c *convertOpts) convertFile(file, targetDir string) {
	log.Info().Str("file", file).Msg("converting UBL file to CII")

	data, err := os.ReadFile(file)
	if err != nil {
		log.Error().Err(err).Str("file", file).Msg("failed to read UBL file")
		return
	}

	errs := new(ublcii.ErrorList)
	doc := ublcii.ConvertAutoDetect(data, errs)
	if errs.HasErrors() || doc == nil {
		log.Error().Str("file", file).Msg("failed to convert UBL file to CII")
		for _, convErr := range errs.Errors() {
			log.Error().Msg("  " + convErr.Error())
		}
		return
	}

	out, err := ublcii.Bytes(doc)
	if err != nil {
		log.Error().Err(err).Str("file", file).Msg("failed to serialize CII file")
		return
	}

	destFile := filepath.Join(targetDir, baseName(file)+c.outputSuffix+".xml")
	if err := os.WriteFile(destFile, out, 0o644); err != nil {
		log.Error().Err(err).Str("file", destFile).Msg("failed to write CII file")
		return
	}
	log.Info().Str("file", destFile).Msg("successfully wrote CII file")
}

func hasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?") ||
		(strings.Contains(s, "[") && strings.Contains(s, "]"))
}

func baseName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
