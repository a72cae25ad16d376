// Package session holds the persisted proof of authentication: one Record
// (server-provided user fields plus the bearer token) kept under a fixed key
// of the local key-value store.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

const tokenField = "token"

// Record is the Session Record. User holds whatever fields the server
// returned for the user; Token is the bearer token. A Record is never
// mutated in place by this package: Save replaces it wholesale.
type Record struct {
	User  map[string]any
	Token string
}

// NewRecord merges the server's user fields with token. A "token" key
// inside user is dropped in favour of the explicit token.
func NewRecord(user map[string]any, token string) Record {
	u := make(map[string]any, len(user))
	maps.Copy(u, user)
	delete(u, tokenField)
	return Record{User: u, Token: token}
}

// Authenticated reports whether the record carries a token. A record without
// one is treated exactly like no record.
func (r Record) Authenticated() bool {
	return r.Token != ""
}

func (r Record) field(name string) string {
	if v, ok := r.User[name].(string); ok {
		return v
	}
	return ""
}

func (r Record) Name() string  { return r.field("name") }
func (r Record) Email() string { return r.field("email") }

// DisplayName is the name, else the email.
func (r Record) DisplayName() string {
	if n := r.Name(); n != "" {
		return n
	}
	return r.Email()
}

// MarshalJSON writes the flat layout {...userFields, "token": token}.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.User)+1)
	maps.Copy(flat, r.User)
	flat[tokenField] = r.Token
	return json.Marshal(flat)
}

// UnmarshalJSON reads the flat layout. The document must be a JSON object;
// a present token must be a string.
func (r *Record) UnmarshalJSON(b []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}
	if flat == nil {
		return errors.New("session record is null")
	}

	var token string
	if raw, ok := flat[tokenField]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("session token has type %T", raw)
		}
		token = s
	}
	delete(flat, tokenField)

	r.User = flat
	r.Token = token
	return nil
}
