package aws

// CredentialSetter is a chainable mutator for one profile's fields, obtained
// from CredentialsManager.WithProfile. Each call looks the profile up fresh,
// so a chain outlives RemoveProfile safely: calls made after the profile was
// removed are silent no-ops.
type CredentialSetter struct {
	manager *CredentialsManager
	profile string
}

// SetAccessKeyID overwrites the profile's access key ID.
func (s *CredentialSetter) SetAccessKeyID(value string) *CredentialSetter {
	if cred := s.manager.profile(s.profile); cred != nil {
		cred.AccessKeyID = value
	}
	return s
}

// SetSecretAccessKey overwrites the profile's secret access key.
func (s *CredentialSetter) SetSecretAccessKey(value string) *CredentialSetter {
	if cred := s.manager.profile(s.profile); cred != nil {
		cred.SecretAccessKey = value
	}
	return s
}

// SetSessionToken sets the profile's session token. A nil token clears it.
func (s *CredentialSetter) SetSessionToken(token *string) *CredentialSetter {
	if cred := s.manager.profile(s.profile); cred != nil {
		if token == nil {
			cred.SessionToken = nil
		} else {
			owned := *token
			cred.SessionToken = &owned
		}
	}
	return s
}

// ClearSessionToken removes the profile's session token.
func (s *CredentialSetter) ClearSessionToken() *CredentialSetter {
	return s.SetSessionToken(nil)
}
