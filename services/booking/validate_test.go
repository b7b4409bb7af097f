package booking

import (
	"context"
	"testing"

	"yalasafari/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	cases := map[string]func(*CreateRequest){
		"missing name":  func(r *CreateRequest) { r.CustomerName = "" },
		"missing email": func(r *CreateRequest) { r.CustomerEmail = "  " },
		"missing phone": func(r *CreateRequest) { r.CustomerPhone = "" },
		"missing date":  func(r *CreateRequest) { r.Date = "" },
		"bad email":     func(r *CreateRequest) { r.CustomerEmail = "not-an-email" },
		"bad date":      func(r *CreateRequest) { r.Date = "05/10/2026" },
		"zero people":   func(r *CreateRequest) { r.People = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			mutate(&req)
			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, CodeValidation, ErrCode(err))
		})
	}
}

func TestCreateRejectsInvalidSelections(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	req := validCreateRequest()
	req.JeepGrade = "hovercraft"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidSelection, ErrCode(err))
}

func TestCreateRejectsOversizedParty(t *testing.T) {
	svc, _ := newTestService(&recordingNotifier{})

	req := validCreateRequest()
	req.People = 8
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidPartySize, ErrCode(err))
}

func TestValidateCreateNormalizesDate(t *testing.T) {
	req := validCreateRequest()
	date, err := validateCreate(req)
	require.NoError(t, err)
	assert.Equal(t, models.NormalizeDate(date), date)
	assert.Equal(t, "2026-10-05", date.Format(dateLayout))
}
