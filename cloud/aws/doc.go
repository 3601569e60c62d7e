// Package aws loads, modifies, and saves AWS credentials stored in the
// standard shared credentials file format (~/.aws/credentials).
//
// Typical usage:
//
//	creds, err := aws.Load("/home/me/.aws/credentials")
//	if err != nil {
//		return err
//	}
//	creds.WithProfile("default").
//		SetAccessKeyID("ACCESS_KEY").
//		SetSecretAccessKey("SECRET_KEY")
//	if err := creds.Save(); err != nil {
//		return err
//	}
//
// Parsing is lenient: comments, blank lines, unknown keys, and malformed
// lines are skipped rather than rejected. Saving rewrites the whole file with
// profiles in name order, keeping only the recognized keys.
package aws
