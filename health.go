package iyzisub

import (
	"context"
	"fmt"
	"net/http"
)

// testBIN is a well-known test card prefix used by Check.
const testBIN = "552879"

// BinCheckRequest looks up card metadata by BIN.
type BinCheckRequest struct {
	RequestOptions
	// BinNumber is the first 6 to 8 digits of the card number.
	BinNumber string `json:"binNumber"`
}

// BinDetails is the card metadata behind a BIN.
type BinDetails struct {
	BinNumber       string `json:"binNumber"`
	CardType        string `json:"cardType"`
	CardAssociation string `json:"cardAssociation"`
	CardFamily      string `json:"cardFamily"`
	BankName        string `json:"bankName"`
	BankCode        int64  `json:"bankCode"`
	Commercial      int    `json:"commercial"`
}

// binCheckResponse is the BIN endpoint's envelope. Unlike the subscription
// endpoints it is flat: the card fields sit beside the envelope fields, and
// failures arrive as HTTP 200 with status "failure".
type binCheckResponse struct {
	Status         string `json:"status"`
	SystemTime     int64  `json:"systemTime"`
	ConversationID string `json:"conversationId,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
	ErrorCode      string `json:"errorCode,omitempty"`
	ErrorGroup     string `json:"errorGroup,omitempty"`
	BinDetails
}

// HealthService checks connectivity and looks up card BINs.
type HealthService struct {
	client *Client
}

// BinCheck looks up the card metadata behind a BIN.
func (s *HealthService) BinCheck(ctx context.Context, req *BinCheckRequest) (*BinDetails, error) {
	if req == nil {
		return nil, fmt.Errorf("bin check request is nil")
	}
	if req.BinNumber == "" {
		return nil, fmt.Errorf("bin number is required")
	}
	s.client.prepare(&req.RequestOptions)

	var resp binCheckResponse
	if err := s.client.Do(ctx, http.MethodPost, "/payment/bin/check", req, &resp); err != nil {
		return nil, err
	}
	if resp.Status == StatusFailure {
		message := resp.ErrorMessage
		if message == "" {
			message = "bin check failed"
		}
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Message:    message,
			ErrorCode:  resp.ErrorCode,
			ErrorGroup: resp.ErrorGroup,
			Method:     http.MethodPost,
		}
	}
	return &resp.BinDetails, nil
}

// Check verifies connectivity and credentials with a BIN lookup against a
// well-known test prefix. A nil return means the API accepted a signed
// request from this client.
func (s *HealthService) Check(ctx context.Context) error {
	_, err := s.BinCheck(ctx, &BinCheckRequest{BinNumber: testBIN})
	return err
}
