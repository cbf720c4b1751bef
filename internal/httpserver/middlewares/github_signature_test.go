package middlewares_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ciscoecosystem/sync-jira-actions/internal/httpserver/middlewares"
	"github.com/stretchr/testify/require"
)

func sign(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestGitHubSignatureMiddleware(t *testing.T) {
	type testCase struct {
		name      string
		secret    string
		body      string
		signature string

		expectedStatus int
	}

	cases := []testCase{
		{
			name:           "Valid signature passes",
			secret:         "hook-secret",
			body:           `{"action":"opened"}`,
			signature:      sign("hook-secret", `{"action":"opened"}`),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Wrong secret is rejected",
			secret:         "hook-secret",
			body:           `{"action":"opened"}`,
			signature:      sign("other-secret", `{"action":"opened"}`),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Tampered body is rejected",
			secret:         "hook-secret",
			body:           `{"action":"closed"}`,
			signature:      sign("hook-secret", `{"action":"opened"}`),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing signature header is rejected",
			secret:         "hook-secret",
			body:           `{"action":"opened"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "No configured secret disables the check",
			secret:         "",
			body:           `{"action":"opened"}`,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var seenBody string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				seenBody = string(b)
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewares.GitHubSignatureMiddleware(tc.secret)(next)

			req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(tc.body))
			if tc.signature != "" {
				req.Header.Set("X-Hub-Signature-256", tc.signature)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				// The body must still be readable downstream after verification.
				require.Equal(t, tc.body, seenBody)
			}
		})
	}
}
