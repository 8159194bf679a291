package ublcii_test

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invopop/phive"
	ublcii "github.com/sascha10000/en16931-ubl2cii"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	xmlPattern = "*.xml"

	// VESID of the EN 16931 CII D16B validation rules.
	ciiVESID = "eu.cen.en16931:cii:1.3.13"
)

// updateOut is a flag that can be set to update example files
var updateOut = flag.Bool("update", false, "Update the example files in test/data")

// validate is a flag that enables Phive validation
var validate = flag.Bool("validate", false, "Run Phive validation on generated XML")

func TestConvertExamples(t *testing.T) {
	var pc phive.ValidationServiceClient

	// Only connect to Phive if validation is requested
	if *validate {
		conn, err := grpc.NewClient(
			"127.0.0.1:9091",
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		require.NoError(t, err)
		defer conn.Close() //nolint:errcheck
		pc = phive.NewValidationServiceClient(conn)
	}

	examples, err := filepath.Glob(filepath.Join(getDataPath(), xmlPattern))
	require.NoError(t, err)
	require.NotEmpty(t, examples, "no example files found")

	for _, example := range examples {
		inName := filepath.Base(example)
		outName := strings.Replace(inName, ".xml", "-cii.xml", 1)

		t.Run(inName, func(t *testing.T) {
			xmlData, err := os.ReadFile(example)
			require.NoError(t, err)

			errs := new(ublcii.ErrorList)
			doc := ublcii.ConvertAutoDetect(xmlData, errs)
			require.False(t, errs.HasErrors(), "conversion errors: %v", errs.Errors())
			require.NotNil(t, doc)

			data, err := ublcii.Bytes(doc)
			require.NoError(t, err)

			outPath := filepath.Join(getDataPath(), "out", outName)
			if *updateOut {
				require.NoError(t, os.MkdirAll(filepath.Dir(outPath), 0o755))
				require.NoError(t, os.WriteFile(outPath, data, 0o644))
			}

			// Run Phive validation if requested
			if *validate {
				resp, err := pc.ValidateXml(context.Background(), &phive.ValidateXmlRequest{
					Vesid:      ciiVESID,
					XmlContent: data,
				})
				require.NoError(t, err)
				results, err := json.MarshalIndent(resp.Results, "", "  ")
				require.NoError(t, err)
				require.True(t, resp.Success, "Generated XML should be valid for %s: %s", ciiVESID, string(results))
			}

			output, err := os.ReadFile(outPath)
			require.NoError(t, err)
			assert.Equal(t, string(output), string(data), "Output should match the expected XML. Update with -update flag.")
		})
	}
}

func getDataPath() string {
	return filepath.Join("test", "data")
}
