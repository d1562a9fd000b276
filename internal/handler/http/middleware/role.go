package middleware

import (
	"net/http"

	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireSuperAdmin requires the super_admin role
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrUnauthorized)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != scope.RoleSuperAdmin {
			response.HandleError(w, employee.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires location_manager or super_admin role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrUnauthorized)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != scope.RoleSuperAdmin && role != scope.RoleLocationManager) {
			response.HandleError(w, employee.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
