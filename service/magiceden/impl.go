package magiceden

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/magiceden-go/base/ctx"
	"github.com/x-xyz/magiceden-go/base/log"
	"github.com/x-xyz/magiceden-go/base/validator"
	"github.com/x-xyz/magiceden-go/domain/chain"
)

type client struct {
	client  http.Client
	timeout time.Duration
	apikey  string
	chain   chain.Chain
	url     apiUrl
}

func (c *client) RetrieveAsks(ctx bCtx.Ctx, req *AsksRequest) (*AsksResponse, error) {
	if req == nil {
		req = &AsksRequest{}
	}

	url := c.url.retrieveAsks(c.chain, req.Encode())
	statusCode, data, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.do failed")
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, c.errorFromStatus(ctx, url, statusCode, data)
	}

	resp := &AsksResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, &ParseError{StatusCode: statusCode, Body: string(data), Err: err}
	}
	return resp, nil
}

func (c *client) BuyTokens(ctx bCtx.Ctx, req *BuyTokensRequest) (*BuyTokensResponse, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, ErrMissingItems
	}
	if err := validator.Struct(req); err != nil {
		ctx.WithField("err", err).Error("invalid buy tokens request")
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}

	url := c.url.buyTokens(c.chain)
	statusCode, data, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.do failed")
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, c.errorFromStatus(ctx, url, statusCode, data)
	}

	resp := &BuyTokensResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, &ParseError{StatusCode: statusCode, Body: string(data), Err: err}
	}
	return resp, nil
}

func (c *client) do(ctx bCtx.Ctx, method, url string, body []byte) (int, []byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return 0, nil, err
	}

	if c.apikey != "" {
		req.Header.Set(authHeader, "Bearer "+c.apikey)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return 0, nil, &TransportError{Url: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return 0, nil, &TransportError{Url: url, Err: err}
	}
	return resp.StatusCode, data, nil
}

// errorFromStatus maps a non-200 response to its typed error
func (c *client) errorFromStatus(ctx bCtx.Ctx, url string, statusCode int, body []byte) error {
	ctx.WithFields(log.Fields{
		"url":        url,
		"statusCode": statusCode,
	}).Error("resp.StatusCode != 200")

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthError{StatusCode: statusCode, Body: string(body)}
	case statusCode == http.StatusGone:
		eb := errorBody{}
		if err := json.Unmarshal(body, &eb); err != nil {
			return &ParseError{StatusCode: statusCode, Body: string(body), Err: err}
		}
		return &OrderFilledError{StatusCode: statusCode, Name: eb.Error, Message: eb.Message, Code: eb.Code}
	case statusCode >= 400 && statusCode < 500:
		eb := errorBody{}
		if err := json.Unmarshal(body, &eb); err != nil {
			return &ParseError{StatusCode: statusCode, Body: string(body), Err: err}
		}
		if eb.StatusCode == 0 {
			eb.StatusCode = statusCode
		}
		return &RequestError{StatusCode: eb.StatusCode, Name: eb.Error, Message: eb.Message}
	default:
		return &ServerError{StatusCode: statusCode, Body: string(body)}
	}
}
