package maci

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// CertificateRequest asks the oracle for the voice credits of an address in a round
type CertificateRequest struct {
	Ecosystem       string `json:"-"`
	Address         string `json:"address"`
	ContractAddress string `json:"contractAddress"`
	Height          string `json:"height"`
}

// Certificate is the oracle's signed attestation of an address' voice credits
type Certificate struct {
	Signature string `json:"signature"`
	Amount    string `json:"amount"`
}

// ValidateBasic returns an error if the certificate cannot be used to sign up
func (c Certificate) ValidateBasic() error {
	if c.Signature == "" {
		return fmt.Errorf("certificate signature must not be empty")
	}

	amount, ok := math.NewIntFromString(c.Amount)
	if !ok || amount.IsNegative() {
		return fmt.Errorf("certificate amount %q is not a non-negative integer", c.Amount)
	}

	return nil
}

// CertificateClient requests certificates from the oracle certificate api
type CertificateClient struct {
	endpoint string
	network  string
	client   *http.Client
}

// NewCertificateClient returns a client for the certificate api of the given network
func NewCertificateClient(endpoint string, network string, client *http.Client) *CertificateClient {
	return &CertificateClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		network:  network,
		client:   client,
	}
}

// Sign requests a certificate for req.Address
func (c *CertificateClient) Sign(ctx context.Context, req CertificateRequest) (Certificate, error) {
	if req.Ecosystem == "" {
		return Certificate{}, errorsmod.Wrap(ErrCertificate, "ecosystem must be set")
	}

	target := fmt.Sprintf("%s/%s/%s/sign", c.endpoint, url.PathEscape(req.Ecosystem), url.PathEscape(c.network))

	var cert Certificate
	if err := postJSON(ctx, c.client, target, req, &cert); err != nil {
		return Certificate{}, errorsmod.Wrap(ErrCertificate, err.Error())
	}

	if err := cert.ValidateBasic(); err != nil {
		return Certificate{}, errorsmod.Wrap(ErrCertificate, err.Error())
	}

	return cert, nil
}

func postJSON(ctx context.Context, client *http.Client, target string, body interface{}, out interface{}) error {
	bz, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(bz))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("POST %s: %s: %s", target, res.Status, strings.TrimSpace(string(resBody)))
	}

	if err := json.Unmarshal(resBody, out); err != nil {
		return fmt.Errorf("POST %s: invalid response: %w", target, err)
	}

	return nil
}
