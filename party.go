package ublcii

// convertParty maps a UBL party to a CII trade party. The party name falls
// back to the registration name of the first legal entity, which CII
// requires when the UBL source carries no PartyName.
func convertParty(party *Party) *TradeParty {
	if party == nil {
		return nil
	}

	tp := new(TradeParty)
	for _, pid := range party.PartyIdentification {
		if id := convertID(pid.ID); id != nil {
			tp.ID = append(tp.ID, *id)
		}
	}

	if party.PartyName != nil {
		tp.Name = party.PartyName.Name
	}

	if len(party.PartyLegalEntity) > 0 {
		entity := party.PartyLegalEntity[0]
		tp.SpecifiedLegalOrganization = &LegalOrganization{
			ID:                  convertID(entity.CompanyID),
			TradingBusinessName: orEmpty(entity.RegistrationName),
			PostalTradeAddress:  convertAddress(entity.RegistrationAddress),
		}
		if tp.Name == "" {
			tp.Name = orEmpty(entity.RegistrationName)
		}
	}

	tp.PostalTradeAddress = convertAddress(party.PostalAddress)

	if party.EndpointID != nil {
		tp.URIUniversalCommunication = append(tp.URIUniversalCommunication, UniversalCommunication{
			URIID: convertID(party.EndpointID),
		})
	}

	if len(party.PartyTaxScheme) > 0 {
		taxScheme := party.PartyTaxScheme[0]
		if taxScheme.CompanyID != nil && taxScheme.CompanyID.Value != "" {
			id := convertID(taxScheme.CompanyID)
			if taxScheme.TaxScheme != nil && taxScheme.TaxScheme.ID.Value != "" {
				scheme := asVAIfNecessary(taxScheme.TaxScheme.ID.Value)
				id.SchemeID = &scheme
			}
			tp.SpecifiedTaxRegistration = append(tp.SpecifiedTaxRegistration, TaxRegistration{ID: id})
		}
	}

	for i := range party.Person {
		tp.DefinedTradeContact = append(tp.DefinedTradeContact, convertPerson(&party.Person[i]))
	}
	if party.Contact != nil {
		tp.DefinedTradeContact = append(tp.DefinedTradeContact, convertContact(party.Contact))
	}

	return tp
}

// convertAddress maps a UBL postal address. The first AddressLine becomes
// line three of the trade address.
func convertAddress(addr *PostalAddress) *TradeAddress {
	if addr == nil {
		return nil
	}

	ta := &TradeAddress{
		LineOne:      orEmpty(addr.StreetName),
		LineTwo:      orEmpty(addr.AdditionalStreetName),
		CityName:     orEmpty(addr.CityName),
		PostcodeCode: orEmpty(addr.PostalZone),
	}
	if len(addr.AddressLine) > 0 {
		ta.LineThree = addr.AddressLine[0].Line
	}
	if addr.CountrySubentity != nil {
		ta.CountrySubDivisionName = append(ta.CountrySubDivisionName, CIIText{Value: *addr.CountrySubentity})
	}
	if addr.Country != nil {
		ta.CountryID = addr.Country.IdentificationCode
	}
	return ta
}

// convertPerson maps a UBL contact person. The person name is the
// concatenation of the name parts, overriding any name from the nested
// contact record.
func convertPerson(person *Person) TradeContact {
	var tc TradeContact
	if person.Contact != nil {
		tc = convertContact(person.Contact)
	}
	tc.DepartmentName = orEmpty(person.OrganizationDepartment)
	tc.PersonName = orEmpty(person.FirstName) + orEmpty(person.MiddleName) +
		orEmpty(person.FamilyName) + orEmpty(person.NameSuffix)
	return tc
}

// convertContact maps a UBL contact record.
func convertContact(contact *Contact) TradeContact {
	tc := TradeContact{
		PersonName: orEmpty(contact.Name),
	}
	if contact.Telephone != nil {
		tc.TelephoneUniversalCommunication = &UniversalCommunication{
			CompleteNumber: *contact.Telephone,
		}
	}
	if contact.ElectronicMail != nil {
		tc.EmailURIUniversalCommunication = &UniversalCommunication{
			URIID: &CIIID{Value: *contact.ElectronicMail},
		}
	}
	return tc
}
