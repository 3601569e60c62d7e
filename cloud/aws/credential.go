package aws

import (
	"errors"
	"os"

	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/sts"
)

// Credential is an AWS credential from the credentials file. SessionToken is
// nil when the profile has no aws_session_token line.
type Credential struct {
	AccessKeyID     string  `mapstructure:"aws_access_key_id"`
	SecretAccessKey string  `mapstructure:"aws_secret_access_key"`
	SessionToken    *string `mapstructure:"aws_session_token"`
}

// clone returns a copy that shares no memory with the receiver.
func (c Credential) clone() Credential {
	out := c
	if c.SessionToken != nil {
		token := *c.SessionToken
		out.SessionToken = &token
	}
	return out
}

// Static returns the credential as a static AWS SDK credentials provider.
func (c Credential) Static() *credentials.Credentials {
	var token string
	if c.SessionToken != nil {
		token = *c.SessionToken
	}
	return credentials.NewStaticCredentials(c.AccessKeyID, c.SecretAccessKey, token)
}

// FromEnviron gets a credential from the AWS environment variables
func FromEnviron() (Credential, bool) {
	akid, akok := os.LookupEnv("AWS_ACCESS_KEY_ID")
	asak, skok := os.LookupEnv("AWS_SECRET_ACCESS_KEY")
	if !akok || !skok {
		return Credential{}, false
	}
	cred := Credential{
		AccessKeyID:     akid,
		SecretAccessKey: asak,
	}
	if token, ok := os.LookupEnv("AWS_SESSION_TOKEN"); ok {
		cred.SessionToken = &token
	}
	return cred, true
}

// FromAccessKey converts an iam.AccessKey to a Credential
func FromAccessKey(key iam.AccessKey) (Credential, error) {
	cred := Credential{
		AccessKeyID:     *key.AccessKeyId,
		SecretAccessKey: *key.SecretAccessKey,
	}
	return cred, nil
}

// FromSTSCredentials converts temporary sts.Credentials to a Credential
func FromSTSCredentials(creds *sts.Credentials) (Credential, error) {
	if creds == nil || creds.AccessKeyId == nil || creds.SecretAccessKey == nil {
		return Credential{}, errors.New("Incomplete STS credentials")
	}
	cred := Credential{
		AccessKeyID:     *creds.AccessKeyId,
		SecretAccessKey: *creds.SecretAccessKey,
	}
	if creds.SessionToken != nil {
		token := *creds.SessionToken
		cred.SessionToken = &token
	}
	return cred, nil
}
