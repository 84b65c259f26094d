package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"saferoute/types"
)

const defaultCallTimeout = 10 * time.Second

// Dispatcher delivers notification payloads to authority endpoints
// concurrently. It is stateless between calls and safe for concurrent use.
type Dispatcher struct {
	client      *http.Client
	bearerToken string
	callTimeout time.Duration
}

// NewDispatcher builds a dispatcher. The bearer token may be empty; the
// endpoints decide whether to accept unauthenticated reports.
func NewDispatcher(bearerToken string) *Dispatcher {
	return &Dispatcher{
		client:      &http.Client{},
		bearerToken: bearerToken,
		callTimeout: defaultCallTimeout,
	}
}

// Dispatch sends the payload to every authority in the plan in parallel,
// each call on its own timeout, and returns one outcome per planned
// authority. A failing endpoint never blocks or hides the others, and
// the report is complete even when every call fails. Dispatch itself
// never returns an error.
func (d *Dispatcher) Dispatch(ctx context.Context, plan types.NotificationPlan, payload types.NotificationPayload) types.NotificationReport {
	// One slot per planned authority; each goroutine writes only its own,
	// so no locking is needed on the shared slice.
	outcomes := make([]types.NotificationOutcome, len(plan))

	var wg sync.WaitGroup
	for i, planned := range plan {
		if planned.Endpoint == "" {
			outcomes[i] = types.NotificationOutcome{
				Status:    types.OutcomeNoEndpoint,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			}
			continue
		}

		wg.Add(1)
		go func(slot int, endpoint string) {
			defer wg.Done()
			outcomes[slot] = d.deliver(ctx, endpoint, payload)
		}(i, planned.Endpoint)
	}
	wg.Wait()

	report := make(types.NotificationReport, len(plan))
	for i, planned := range plan {
		report[planned.Authority] = outcomes[i]
	}
	return report
}

// deliver posts the payload to a single endpoint and classifies the result.
func (d *Dispatcher) deliver(ctx context.Context, endpoint string, payload types.NotificationPayload) types.NotificationOutcome {
	now := func() string { return time.Now().UTC().Format(time.RFC3339) }

	body, err := json.Marshal(payload)
	if err != nil {
		return types.NotificationOutcome{Status: types.OutcomeError, Error: err.Error(), Timestamp: now()}
	}

	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return types.NotificationOutcome{Status: types.OutcomeError, Error: err.Error(), Timestamp: now()}
	}
	req.Header.Set("Content-Type", "application/json")
	if d.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+d.bearerToken)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("Authority notification error for %s: %v", endpoint, err)
		return types.NotificationOutcome{Status: types.OutcomeError, Error: err.Error(), Timestamp: now()}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return types.NotificationOutcome{Status: types.OutcomeSuccess, Code: resp.StatusCode, Timestamp: now()}
	default:
		return types.NotificationOutcome{Status: types.OutcomeFailed, Code: resp.StatusCode, Timestamp: now()}
	}
}
