package aws

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// parseCredentials parses credentials file text into a profile map.
//
// The format is line-oriented: `[name]` opens a profile section, `key = value`
// lines inside a section set recognized fields, `#` lines and blank lines are
// skipped. Unrecognized keys, lines without an `=`, and assignments outside
// any section are silently dropped. Opening the same section twice keeps the
// later section only.
func parseCredentials(data string) (map[string]*Credential, error) {
	profiles := make(map[string]*Credential)

	var section string
	var fields map[string]string

	for _, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if fields != nil {
				cred, err := commitSection(fields)
				if err != nil {
					return nil, err
				}
				profiles[section] = cred
			}
			section = line[1 : len(line)-1]
			fields = make(map[string]string)
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if fields == nil {
			// assignment before any section header
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		fields[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	if fields != nil {
		cred, err := commitSection(fields)
		if err != nil {
			return nil, err
		}
		profiles[section] = cred
	}

	return profiles, nil
}

// commitSection finalizes an accumulated section into a Credential. Fields
// never seen decode to their zero values, so a section missing
// aws_secret_access_key still commits with an empty secret.
func commitSection(fields map[string]string) (*Credential, error) {
	var cred Credential
	if err := mapstructure.Decode(fields, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// serializeCredentials renders the profile map back to credentials file text.
// Profiles are emitted sorted by name so that repeated saves of the same
// store are byte-identical.
func serializeCredentials(profiles map[string]*Credential) string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		cred := profiles[name]
		fmt.Fprintf(&b, "[%s]\n", name)
		fmt.Fprintf(&b, "aws_access_key_id = %s\n", cred.AccessKeyID)
		fmt.Fprintf(&b, "aws_secret_access_key = %s\n", cred.SecretAccessKey)
		if cred.SessionToken != nil {
			fmt.Fprintf(&b, "aws_session_token = %s\n", *cred.SessionToken)
		}
		b.WriteString("\n")
	}
	return b.String()
}
