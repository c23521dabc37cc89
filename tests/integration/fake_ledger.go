package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// fakeLedger is an in-process stand-in for the upstream ledger REST API.
// It implements just enough of the wire contract to exercise the gateway
// end-to-end: envelope responses, PIN checking on protected endpoints, and
// balance accounting on withdrawal.
type fakeLedger struct {
	mu sync.Mutex

	pin         string
	available   int64
	hasAccount  bool
	withdrawals []map[string]interface{}
	nextUID     int

	// submitDelay slows down /withdraw so concurrent submits overlap.
	submitDelay time.Duration
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		pin:        "1234",
		available:  50000,
		hasAccount: true,
		nextUID:    100,
	}
}

func (f *fakeLedger) server() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/balance", f.handleBalance)
	mux.HandleFunc("/withdrawal", f.handleAccount)
	mux.HandleFunc("/withdraw", f.handleWithdraw)
	mux.HandleFunc("/withdrawals", f.handleList)
	return httptest.NewServer(mux)
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
		"success": status < http.StatusBadRequest,
		"data":    data,
	})
}

func writeFailure(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
		"success": false,
		"code":    code,
		"message": message,
	})
}

func (f *fakeLedger) handleBalance(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeEnvelope(w, http.StatusOK, map[string]interface{}{
		"current": map[string]int64{"available": f.available, "pending": 0, "on_hold": 0},
	})
}

func (f *fakeLedger) handleAccount(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		if !f.hasAccount {
			writeEnvelope(w, http.StatusOK, map[string]interface{}{"current": nil, "hasPin": false})
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"current": map[string]interface{}{
				"method":              "cbe",
				"accountName":         "Abebe Bikila",
				"maskedAccountNumber": "**********8901",
				"verified":            true,
			},
			"hasPin": true,
		})
	case http.MethodDelete:
		var body struct {
			Pin string `json:"pin"`
		}
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		if body.Pin != f.pin {
			writeFailure(w, http.StatusUnauthorized, "", "wrong PIN")
			return
		}
		f.hasAccount = false
		writeEnvelope(w, http.StatusOK, nil)
	default:
		writeFailure(w, http.StatusMethodNotAllowed, "", "method not allowed")
	}
}

func (f *fakeLedger) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount int64  `json:"amount"`
		Pin    string `json:"pin"`
		Notes  string `json:"notes"`
	}
	json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck

	if f.submitDelay > 0 {
		time.Sleep(f.submitDelay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if body.Pin != f.pin {
		writeFailure(w, http.StatusUnauthorized, "", "wrong PIN")
		return
	}
	if body.Amount > f.available {
		writeFailure(w, http.StatusBadRequest, "INSUFFICIENT_BALANCE", "amount exceeds available balance")
		return
	}

	f.available -= body.Amount
	f.nextUID++
	wd := map[string]interface{}{
		"uid":          fmt.Sprintf("wd_%d", f.nextUID),
		"amount":       body.Amount,
		"fee_amount":   body.Amount / 20,
		"status":       "pending",
		"method":       "cbe",
		"notes":        body.Notes,
		"requested_at": time.Now().UTC().Format(time.RFC3339),
	}
	f.withdrawals = append(f.withdrawals, wd)
	writeEnvelope(w, http.StatusCreated, wd)
}

func (f *fakeLedger) handleList(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeEnvelope(w, http.StatusOK, map[string]interface{}{"withdrawals": f.withdrawals})
}

func (f *fakeLedger) submitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.withdrawals)
}
