package aws

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	homedir "github.com/mitchellh/go-homedir"
)

// FileSystem abstracts the whole-file reads and writes the manager performs.
type FileSystem interface {
	// ReadText reads the named file and returns its contents as text.
	ReadText(path string) (string, error)

	// WriteText writes content to the named file, creating it if absent and
	// truncating it otherwise.
	WriteText(path string, content string) error
}

// OSFileSystem implements FileSystem against the local disk.
type OSFileSystem struct{}

// ReadText delegates to ioutil.ReadFile.
func (OSFileSystem) ReadText(path string) (string, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteText delegates to ioutil.WriteFile. Credentials files are private to
// the user, so new files are created 0600.
func (OSFileSystem) WriteText(path string, content string) error {
	return ioutil.WriteFile(path, []byte(content), 0600)
}

// homeDir resolves the user's home directory. Overridable in tests.
var homeDir = homedir.Dir

// DefaultPath returns the default credentials file path. The
// AWS_SHARED_CREDENTIALS_FILE environment variable takes priority over
// ~/.aws/credentials, matching the AWS SDKs.
func DefaultPath() (string, error) {
	if path, ok := os.LookupEnv("AWS_SHARED_CREDENTIALS_FILE"); ok {
		return path, nil
	}
	hd, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	return filepath.Join(hd, ".aws", "credentials"), nil
}

// CredentialsManager holds the profiles of one credentials file and writes
// them back on demand. It is not safe for concurrent use; callers invoking it
// from multiple goroutines must serialize access themselves.
type CredentialsManager struct {
	filePath string
	profiles map[string]*Credential
	fs       FileSystem
}

// New creates an empty manager bound to path. No file is read or written.
func New(path string) *CredentialsManager {
	return NewWithFS(path, OSFileSystem{})
}

// NewWithFS is New with an explicit FileSystem.
func NewWithFS(path string, fs FileSystem) *CredentialsManager {
	return &CredentialsManager{
		filePath: path,
		profiles: make(map[string]*Credential),
		fs:       fs,
	}
}

// Load reads and parses the credentials file at path.
func Load(path string) (*CredentialsManager, error) {
	return LoadWithFS(path, OSFileSystem{})
}

// LoadWithFS is Load with an explicit FileSystem.
func LoadWithFS(path string, fs FileSystem) (*CredentialsManager, error) {
	text, err := fs.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotReadable, path, err)
	}
	profiles, err := parseCredentials(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return &CredentialsManager{
		filePath: path,
		profiles: profiles,
		fs:       fs,
	}, nil
}

// LoadDefault loads the credentials file from its default location (see
// DefaultPath).
func LoadDefault() (*CredentialsManager, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save serializes the profiles and writes them to the bound path.
func (m *CredentialsManager) Save() error {
	return m.SaveAs(m.filePath)
}

// SaveAs writes the profiles to an explicit path without rebinding the
// manager's own path.
func (m *CredentialsManager) SaveAs(path string) error {
	if err := m.fs.WriteText(path, serializeCredentials(m.profiles)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileNotWritable, path, err)
	}
	return nil
}

// Path returns the file path the manager is bound to.
func (m *CredentialsManager) Path() string {
	return m.filePath
}

// GetProfile returns a copy of the named profile's credential. Mutating the
// copy does not touch the store.
func (m *CredentialsManager) GetProfile(name string) (Credential, bool) {
	cred, ok := m.profiles[name]
	if !ok {
		return Credential{}, false
	}
	return cred.clone(), true
}

// profile returns the live credential for in-package mutation.
func (m *CredentialsManager) profile(name string) *Credential {
	return m.profiles[name]
}

// SetProfile inserts or overwrites the named profile wholesale.
func (m *CredentialsManager) SetProfile(name string, cred Credential) {
	owned := cred.clone()
	m.profiles[name] = &owned
}

// Exists checks if the named profile exists.
func (m *CredentialsManager) Exists(name string) bool {
	_, ok := m.profiles[name]
	return ok
}

// RemoveProfile removes the named profile and returns its prior credential,
// or false if no such profile existed.
func (m *CredentialsManager) RemoveProfile(name string) (Credential, bool) {
	cred, ok := m.profiles[name]
	if !ok {
		return Credential{}, false
	}
	delete(m.profiles, name)
	return *cred, true
}

// ProfileNames returns the profile names in sorted order, matching the order
// profiles are written on save.
func (m *CredentialsManager) ProfileNames() []string {
	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithProfile returns a setter for the named profile, creating the profile
// with empty credentials first if it does not exist.
func (m *CredentialsManager) WithProfile(name string) *CredentialSetter {
	if _, ok := m.profiles[name]; !ok {
		m.profiles[name] = &Credential{}
	}
	return &CredentialSetter{
		manager: m,
		profile: name,
	}
}
