package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
)

const idTokenPrefix = "id"

// EncodeIDToken creates an opaque token that resumes a listing after id.
func EncodeIDToken(id domain.ID) string {
	return EncodeMultiFieldToken(idTokenPrefix, id.String())
}

// DecodeIDToken parses a token produced by EncodeIDToken.
func DecodeIDToken(token string) (domain.ID, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.ID{}, err
	}
	if len(parts) != 2 || parts[0] != idTokenPrefix {
		return domain.ID{}, fmt.Errorf("invalid pagination token format (split)")
	}
	id, err := domain.ParseID(parts[1])
	if err != nil {
		return domain.ID{}, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}
	return id, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
