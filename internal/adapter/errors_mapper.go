package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/isoron/habit-sync/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case resp.StatusCode() == http.StatusNotFound:
		return ErrKeyNotFound
	case resp.StatusCode() == http.StatusConflict:
		var current models.SyncData
		if err := json.Unmarshal(resp.Body(), &current); err != nil {
			return fmt.Errorf("%w: decode current record: %w", ErrEditConflict, err)
		}
		return &ConflictError{Current: current}
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrServiceUnavailable, resp.StatusCode())
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
