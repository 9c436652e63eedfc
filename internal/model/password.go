package model

import (
	"context"
	"fmt"
	"reflect"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/schema"
)

// PasswordHash holds a bcrypt digest. The digest never leaves this package:
// callers can only create one from a plaintext and check a plaintext against it.
type PasswordHash struct {
	digest string
}

func HashPassword(plain string) (PasswordHash, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return PasswordHash{}, fmt.Errorf("hash password failed: %w", err)
	}
	return PasswordHash{digest: string(hash)}, nil
}

// Verify reports whether plain matches the stored digest. An empty hash never verifies.
func (h PasswordHash) Verify(plain string) bool {
	if h.digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.digest), []byte(plain)) == nil
}

func (h PasswordHash) IsZero() bool {
	return h.digest == ""
}

func (h PasswordHash) String() string {
	return "[redacted]"
}

func (h PasswordHash) GoString() string {
	return "model.PasswordHash{[redacted]}"
}

func init() {
	schema.RegisterSerializer(passwordHashSerializerName, passwordHashSerializer{})
}

const passwordHashSerializerName = "password_hash"

// passwordHashSerializer moves the digest between PasswordHash and its column
// without exposing it through an exported method.
type passwordHashSerializer struct{}

func (passwordHashSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue any) error {
	var hash PasswordHash
	switch v := dbValue.(type) {
	case nil:
	case string:
		hash.digest = v
	case []byte:
		hash.digest = string(v)
	default:
		return fmt.Errorf("unsupported password hash column type %T", dbValue)
	}
	field.ReflectValueOf(ctx, dst).Set(reflect.ValueOf(hash))
	return nil
}

func (passwordHashSerializer) Value(_ context.Context, _ *schema.Field, _ reflect.Value, fieldValue any) (any, error) {
	switch v := fieldValue.(type) {
	case PasswordHash:
		return v.digest, nil
	case *PasswordHash:
		if v == nil {
			return "", nil
		}
		return v.digest, nil
	default:
		return nil, fmt.Errorf("unsupported password hash value %T", fieldValue)
	}
}
