package paymentControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
)

// Session is what the gateway hands back for a checkout: a reference to
// reconcile on and a hosted page URL for the customer.
type Session struct {
	Ref string `json:"ref"`
	URL string `json:"url"`
}

type gatewayResponse struct {
	Order struct {
		Ref string `json:"ref"`
		URL string `json:"url"`
	} `json:"order"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateSession registers a payment session for an order. Without
// PAYMENT_API_URL configured it issues a local stub reference and no hosted
// page; actual payment processing happens outside this service.
func CreateSession(orderRef string, amount float64, email string) (Session, error) {
	apiURL := os.Getenv("PAYMENT_API_URL")
	if apiURL == "" {
		return Session{Ref: "STUB-" + uuid.NewString()}, nil
	}

	payload := map[string]interface{}{
		"method":  "create",
		"store":   os.Getenv("PAYMENT_STORE_ID"),
		"authkey": os.Getenv("PAYMENT_AUTH_KEY"),
		"order": map[string]interface{}{
			"cartid":   orderRef,
			"amount":   fmt.Sprintf("%.2f", amount),
			"currency": "BRL",
		},
		"customer": map[string]string{
			"email": email,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return Session{}, err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return Session{}, fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode, string(body))
	}

	var gw gatewayResponse
	if err := json.Unmarshal(body, &gw); err != nil {
		return Session{}, fmt.Errorf("failed to parse payment gateway response: %v", err)
	}
	if gw.Error != nil {
		return Session{}, fmt.Errorf("payment gateway: %s", gw.Error.Message)
	}

	return Session{Ref: gw.Order.Ref, URL: gw.Order.URL}, nil
}
