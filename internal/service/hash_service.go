package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params are the cost parameters of an Argon2id hash.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultArgon2Params is used for webhook API keys.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// Upper bounds for parameters read back from a configured hash.
const (
	maxArgon2Memory = 256 * 1024
	maxArgon2Time   = 10
)

// Argon2HashService implements ports.HashService using Argon2id.
// The bank webhook API key is stored only in this encoded form.
type Argon2HashService struct {
	params Argon2Params
}

// NewArgon2HashService creates a new Argon2id hash service.
func NewArgon2HashService() *Argon2HashService {
	return &Argon2HashService{params: DefaultArgon2Params}
}

// Hash returns $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<hash>.
func (s *Argon2HashService) Hash(secret string) (string, error) {
	salt := make([]byte, s.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(secret), salt, s.params.Time, s.params.Memory, s.params.Threads, s.params.KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		s.params.Memory, s.params.Time, s.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify checks secret against an encoded hash using the hash's own parameters.
func (s *Argon2HashService) Verify(secret string, encoded string) (bool, error) {
	p, salt, key, err := parseArgon2(encoded)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(secret), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func parseArgon2(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("invalid argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("parsing params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decoding salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decoding hash: %w", err)
	}

	if p.Memory == 0 || p.Memory > maxArgon2Memory || p.Time == 0 || p.Time > maxArgon2Time || p.Threads == 0 {
		return p, nil, nil, fmt.Errorf("argon2 params out of range: m=%d,t=%d,p=%d", p.Memory, p.Time, p.Threads)
	}
	if len(salt) < 8 || len(key) < 16 {
		return p, nil, nil, fmt.Errorf("argon2 salt or hash too short")
	}

	p.KeyLen = uint32(len(key))
	p.SaltLen = uint32(len(salt))
	return p, salt, key, nil
}
