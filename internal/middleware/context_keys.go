package middleware

import "context"

const (
	userIDCtxKey = contextKey("userID")
	rolesCtxKey  = contextKey("roles")
)

// GetUserIDFromCtx retrieves the authenticated subject from the context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetRolesFromCtx retrieves the authenticated subject's roles.
func GetRolesFromCtx(ctx context.Context) []string {
	roles, _ := ctx.Value(rolesCtxKey).([]string)
	return roles
}
