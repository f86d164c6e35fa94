package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-mpesa-service/config"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
)

const (
	stkPushPath = "/api/payment/mpesa/stk-push"
	statusPath  = "/api/payment/mpesa/status/"
)

// resultCodes describes the M-Pesa result codes the backend relays.
var resultCodes = map[string]string{
	"0":    "success",
	"1":    "insufficient_funds",
	"17":   "invalid_amount",
	"26":   "duplicate_transaction",
	"1032": "cancelled_by_user",
	"1037": "phone_unreachable",
	"2001": "invalid_credentials",
	"2017": "invalid_phone_number",
	"9999": "system_error",
}

// MpesaClient talks to the backend that fronts the Daraja STK push API and
// stores its callbacks.
type MpesaClient struct {
	baseURL          string
	accountReference string
	transactionDesc  string
	httpClient       *http.Client
}

func NewMpesaClient(cfg config.Gateway) *MpesaClient {
	return &MpesaClient{
		baseURL:          strings.TrimRight(cfg.Endpoint, "/"),
		accountReference: cfg.AccountReference,
		transactionDesc:  cfg.TransactionDesc,
		httpClient:       &http.Client{Timeout: cfg.Timeout},
	}
}

type stkPushRequest struct {
	PhoneNumber      string `json:"phone_number"`
	Amount           int64  `json:"amount"`
	BookingID        string `json:"booking_id"`
	AccountReference string `json:"account_reference"`
	TransactionDesc  string `json:"transaction_desc"`
}

type stkPushResponse struct {
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	MerchantRequestID   string `json:"MerchantRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	Error               string `json:"error"`
}

type statusResponse struct {
	Status        string `json:"status"`
	Conflict      bool   `json:"conflict"`
	Details       string `json:"details"`
	ResultCode    string `json:"ResultCode"`
	ResultDesc    string `json:"ResultDesc"`
	ReceiptNumber string `json:"MpesaReceiptNumber"`
}

// Initiate sends a single STK push request. It never retries.
func (c *MpesaClient) Initiate(ctx context.Context, req models.InitiateRequest) (*models.InitiateResponse, error) {
	body, err := json.Marshal(stkPushRequest{
		PhoneNumber:      req.Phone,
		Amount:           req.Amount,
		BookingID:        req.BookingID,
		AccountReference: c.accountReference,
		TransactionDesc:  c.transactionDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshaling stk push request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+stkPushPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp stkPushResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("stk push rejected: %s", resp.Error)
	}
	if resp.ResponseCode != "" && resp.ResponseCode != "0" {
		return nil, fmt.Errorf("stk push rejected with code %s: %s", resp.ResponseCode, resp.ResponseDescription)
	}
	if resp.CheckoutRequestID == "" {
		return nil, errors.New("stk push response has no CheckoutRequestID")
	}

	return &models.InitiateResponse{
		CorrelationID:     resp.CheckoutRequestID,
		MerchantRequestID: resp.MerchantRequestID,
		CustomerMessage:   resp.CustomerMessage,
	}, nil
}

// QueryStatus reads the persisted status for a checkout request id.
func (c *MpesaClient) QueryStatus(ctx context.Context, correlationID string) (*models.StatusResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+statusPath+url.PathEscape(correlationID), nil)
	if err != nil {
		return nil, err
	}

	var resp statusResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	return &models.StatusResponse{
		Status:        NormaliseStatus(resp.Status, resp.ResultCode),
		Conflict:      resp.Conflict,
		Details:       resp.Details,
		ResultCode:    resp.ResultCode,
		ResultDesc:    describe(resp.ResultCode, resp.ResultDesc),
		ReceiptNumber: resp.ReceiptNumber,
	}, nil
}

func (c *MpesaClient) do(req *http.Request, out interface{}) error {
	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("error reading gateway response: %w", err)
	}

	if res.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("gateway returned %d after %v: %s", res.StatusCode, time.Since(start), strings.TrimSpace(string(raw)))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("gateway returned %d: %s", res.StatusCode, strings.TrimSpace(string(raw)))
		}
		return fmt.Errorf("error parsing gateway response (status %d): %w", res.StatusCode, err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("gateway returned %d: %s", res.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}

// NormaliseStatus maps the backend's status string, or failing that the raw
// M-Pesa ResultCode, onto a gateway status.
func NormaliseStatus(status, resultCode string) models.GatewayStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed", "success", "successful":
		return models.GatewayStatusCompleted
	case "failed", "cancelled":
		return models.GatewayStatusFailed
	case "conflict", "slot_taken":
		return models.GatewayStatusConflict
	case "pending", "processing":
		return models.GatewayStatusPending
	}

	switch resultCode {
	case "":
		return models.GatewayStatusPending
	case "0":
		return models.GatewayStatusCompleted
	default:
		return models.GatewayStatusFailed
	}
}

func describe(resultCode, resultDesc string) string {
	if resultDesc != "" {
		return resultDesc
	}
	if name, ok := resultCodes[resultCode]; ok {
		return name
	}
	if resultCode != "" {
		return "unknown"
	}
	return ""
}
