package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Role is the authorization tier of a user. Higher values carry more rights.
type Role int

const (
	RoleUser Role = iota
	RoleModerator
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleUser:      "user",
	RoleModerator: "moderator",
	RoleAdmin:     "admin",
}

// RoleChoices lists the accepted wire values in rank order.
var RoleChoices = []string{"user", "moderator", "admin"}

func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return RoleUser, fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// AtLeast reports whether r ranks equal to or above other.
func (r Role) AtLeast(other Role) bool {
	return r >= other
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores the role by name so the column stays readable.
func (r Role) Value() (driver.Value, error) {
	if _, ok := roleNames[r]; !ok {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return r.String(), nil
}

func (r *Role) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*r = RoleUser
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (Role) GormDataType() string {
	return "string"
}
