// Package permissions implements the request- and object-level access
// policies applied by the HTTP handlers.
package permissions

import (
	"net/http"

	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/models"
)

const (
	MsgAdminOnly          = "Доступно только администраторам"
	MsgSelfEditOnly       = "Вы не можете редактировать чужие посты!"
	MsgAuthorModeratorAdm = "Доступно только модераторам или администраторам"
)

// Request is what a policy needs to know about the incoming call.
// User is nil for anonymous callers.
type Request struct {
	Method string
	User   *models.User
}

func (r Request) Authenticated() bool {
	return r.User != nil
}

// Safe reports whether the method is read-only.
func (r Request) Safe() bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func (r Request) isAdmin() bool {
	return r.Authenticated() && r.User.IsAdmin()
}

// Owned is implemented by objects that carry an owner identity.
type Owned interface {
	OwnerID() uint
}

type Policy interface {
	HasPermission(r Request) bool
	HasObjectPermission(r Request, obj Owned) bool
	Message() string
}

// Check runs the request-level rule of p.
func Check(p Policy, r Request) error {
	if !p.HasPermission(r) {
		return errs.PermissionDenied(p.Message())
	}
	return nil
}

// CheckObject runs the object-level rule of p against obj.
func CheckObject(p Policy, r Request, obj Owned) error {
	if !p.HasObjectPermission(r, obj) {
		return errs.PermissionDenied(p.Message())
	}
	return nil
}

type AdminOnly struct{}

func (AdminOnly) HasPermission(r Request) bool {
	return r.isAdmin()
}

func (p AdminOnly) HasObjectPermission(r Request, _ Owned) bool {
	return p.HasPermission(r)
}

func (AdminOnly) Message() string { return MsgAdminOnly }

type SelfEditOnly struct{}

func (SelfEditOnly) HasPermission(r Request) bool {
	return r.Authenticated()
}

func (SelfEditOnly) HasObjectPermission(r Request, obj Owned) bool {
	return r.Authenticated() && obj.OwnerID() == r.User.ID
}

func (SelfEditOnly) Message() string { return MsgSelfEditOnly }

type AdminOrReadOnly struct{}

func (AdminOrReadOnly) HasPermission(r Request) bool {
	return r.Safe() || r.isAdmin()
}

func (p AdminOrReadOnly) HasObjectPermission(r Request, _ Owned) bool {
	return p.HasPermission(r)
}

func (AdminOrReadOnly) Message() string { return MsgAdminOnly }

type AuthorModeratorAdminOrReadOnly struct{}

func (AuthorModeratorAdminOrReadOnly) HasPermission(r Request) bool {
	return r.Safe() || r.Authenticated()
}

func (AuthorModeratorAdminOrReadOnly) HasObjectPermission(r Request, obj Owned) bool {
	if r.Safe() {
		return true
	}
	if !r.Authenticated() {
		return false
	}
	return obj.OwnerID() == r.User.ID ||
		r.User.Role.AtLeast(models.RoleModerator) ||
		r.User.IsSuperuser
}

func (AuthorModeratorAdminOrReadOnly) Message() string { return MsgAuthorModeratorAdm }
