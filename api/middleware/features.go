package middleware

import (
	"net/http"

	"newsagg-api/pkg/featureflags"
)

// FeatureGate serves next only while flag is enabled and responds 404 otherwise
func FeatureGate(flags featureflags.Manager, flag featureflags.FeatureFlag, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !flags.IsEnabled(r.Context(), flag) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
