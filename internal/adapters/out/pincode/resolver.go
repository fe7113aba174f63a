// Package pincode resolves Indian postal codes to district and state through
// the public postal API.
package pincode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// DefaultBaseURL is the public postal lookup service.
const DefaultBaseURL = "https://api.postalpincode.in"

const defaultTimeout = 10 * time.Second

// Resolver implements ports.PincodeResolver over the postal API. The API
// wraps its result in a single-element envelope with a textual status; an
// unknown code is a 200 with status "Error".
type Resolver struct {
	baseURL    string
	httpClient *http.Client
}

// NewResolver creates a resolver. An empty baseURL selects DefaultBaseURL; a
// timeout of zero or less selects a 10 second default.
func NewResolver(baseURL string, timeout time.Duration) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Resolver{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type postOfficeDTO struct {
	District string `json:"District"`
	State    string `json:"State"`
}

type envelopeDTO struct {
	Status     string          `json:"Status"`
	PostOffice []postOfficeDTO `json:"PostOffice"`
}

// Resolve looks the code up. The first post office entry decides district
// and state; entries for one pincode never disagree on either.
func (r *Resolver) Resolve(ctx context.Context, pincode address.Pincode) (ports.Locality, error) {
	if err := pincode.Validate(); err != nil {
		return ports.Locality{}, err
	}

	url := fmt.Sprintf("%s/pincode/%s", r.baseURL, pincode.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.Locality{}, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return ports.Locality{}, errs.NewNetworkFailureError("pincode lookup", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Locality{}, errs.NewNetworkFailureError(
			"pincode lookup",
			fmt.Errorf("postal API returned %s", resp.Status),
		)
	}

	var envelopes []envelopeDTO
	if err := json.NewDecoder(resp.Body).Decode(&envelopes); err != nil {
		return ports.Locality{}, errs.NewNetworkFailureError("pincode lookup", err)
	}

	if len(envelopes) == 0 || envelopes[0].Status != "Success" || len(envelopes[0].PostOffice) == 0 {
		return ports.Locality{}, errs.NewObjectNotFoundError("pincode", pincode.String())
	}

	office := envelopes[0].PostOffice[0]
	if office.District == "" || office.State == "" {
		return ports.Locality{}, errs.NewObjectNotFoundError("pincode", pincode.String())
	}

	return ports.Locality{District: office.District, State: office.State}, nil
}
