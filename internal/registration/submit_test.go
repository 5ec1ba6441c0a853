package registration

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	resp  Response
	err   error
	calls int
}

func (f *fakeSubmitter) Submit(context.Context, Form) (Response, error) {
	f.calls++
	return f.resp, f.err
}

func TestSubmitBlockedByValidation(t *testing.T) {
	s := &fakeSubmitter{}
	f := validForm()
	f.Phone = "12345"

	out, err := f.Submit(context.Background(), s)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, MsgPhoneInvalid, verr.Fields["phone"])
	require.Equal(t, MsgPhoneInvalid, out.Fields["phone"])
	require.Empty(t, out.Navigate)
	require.Zero(t, s.calls)
}

func TestSubmitNavigatesToConfirmation(t *testing.T) {
	s := &fakeSubmitter{resp: Response{Status: http.StatusOK, Body: []byte(`{"id":"abc","email":"ada@x.com"}`)}}

	out, err := validForm().Submit(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, "/confirmation/abc", out.Navigate)
	require.Empty(t, out.Alert)
	require.Equal(t, 1, s.calls)
}

func TestSubmitSurfacesServerMessage(t *testing.T) {
	cases := []struct {
		name string
		resp Response
		want string
	}{
		{"conflict", Response{Status: http.StatusConflict, Body: []byte(`{"error":"Email already exists"}`)}, "Email already exists"},
		{"no message", Response{Status: http.StatusInternalServerError, Body: []byte(`{}`)}, MsgSubmitFailed},
		{"not json", Response{Status: http.StatusBadGateway, Body: []byte(`<html>`)}, MsgSubmitFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := validForm().Submit(context.Background(), &fakeSubmitter{resp: tc.resp})
			var rerr *RejectedError
			require.ErrorAs(t, err, &rerr)
			require.Equal(t, tc.resp.Status, rerr.Status)
			require.Equal(t, tc.want, out.Alert)
			require.Empty(t, out.Navigate)
		})
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	cause := errors.New("connection refused")
	out, err := validForm().Submit(context.Background(), &fakeSubmitter{err: cause})

	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	require.ErrorIs(t, err, cause)
	require.Equal(t, MsgNetworkError, out.Alert)
}
