package request

import (
	"encoding/json"
	"errors"
	"strings"

	"petsit_booking/internal/domain/entities"
)

// Recipients accepts either a single address or a list of addresses.
type Recipients []string

func (r *Recipients) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*r = Recipients{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return errors.New("to must be a string or a list of strings")
	}
	*r = list
	return nil
}

// SendEmailRequest is posted by trusted services to send a transactional email.
type SendEmailRequest struct {
	To      Recipients `json:"to" binding:"required"`
	Subject string     `json:"subject" binding:"required"`
	HTML    string     `json:"html" binding:"required"`
	Tag     string     `json:"tag"`
}

func (r SendEmailRequest) ToEmail() entities.Email {
	to := make([]string, 0, len(r.To))
	for _, addr := range r.To {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	return entities.Email{
		To:      to,
		Subject: strings.TrimSpace(r.Subject),
		HTML:    r.HTML,
		Tag:     strings.TrimSpace(r.Tag),
	}
}
