package pincode_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimarket/internal/adapters/out/pincode"
	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/pkg/errs"
)

func mustPincode(t *testing.T, raw string) address.Pincode {
	t.Helper()
	pin, err := address.NewPincode(raw)
	require.NoError(t, err)
	return pin
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("resolves_district_and_state_from_the_first_post_office", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/pincode/411001", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{
				"Message": "Number of pincode(s) found:2",
				"Status": "Success",
				"PostOffice": [
					{"Name": "Pune H.O", "District": "Pune", "State": "Maharashtra"},
					{"Name": "Sadashiv Peth", "District": "Pune", "State": "Maharashtra"}
				]
			}]`))
		}))
		defer server.Close()

		resolver := pincode.NewResolver(server.URL, time.Second)

		locality, err := resolver.Resolve(t.Context(), mustPincode(t, "411 001"))

		require.NoError(t, err)
		assert.Equal(t, "Pune", locality.District)
		assert.Equal(t, "Maharashtra", locality.State)
	})

	t.Run("unknown_code_is_object_not_found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"Message": "No records found", "Status": "Error", "PostOffice": null}]`))
		}))
		defer server.Close()

		resolver := pincodeResolver(server.URL)

		_, err := resolver.Resolve(t.Context(), mustPincode(t, "999999"))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("success_without_post_offices_is_object_not_found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"Status": "Success", "PostOffice": []}]`))
		}))
		defer server.Close()

		resolver := pincodeResolver(server.URL)

		_, err := resolver.Resolve(t.Context(), mustPincode(t, "110001"))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unreachable_service_is_a_network_failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		resolver := pincodeResolver(server.URL)

		_, err := resolver.Resolve(t.Context(), mustPincode(t, "411001"))

		assert.ErrorIs(t, err, errs.ErrNetworkFailure)
	})

	t.Run("upstream_5xx_is_a_network_failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		resolver := pincodeResolver(server.URL)

		_, err := resolver.Resolve(t.Context(), mustPincode(t, "411001"))

		var netErr *errs.NetworkFailureError
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, "pincode lookup", netErr.Op)
	})

	t.Run("malformed_payload_is_a_network_failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"unexpected": "shape"`))
		}))
		defer server.Close()

		resolver := pincodeResolver(server.URL)

		_, err := resolver.Resolve(t.Context(), mustPincode(t, "411001"))

		assert.ErrorIs(t, err, errs.ErrNetworkFailure)
	})

	t.Run("zero_value_pincode_is_rejected_before_any_call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))
		defer server.Close()

		resolver := pincodeResolver(server.URL)

		_, err := resolver.Resolve(t.Context(), address.Pincode{})

		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
		assert.False(t, called)
	})
}

func pincodeResolver(baseURL string) *pincode.Resolver {
	return pincode.NewResolver(baseURL, time.Second)
}
