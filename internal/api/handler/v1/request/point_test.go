package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []uint
		wantErr bool
	}{
		{name: "single", raw: "1", want: []uint{1}},
		{name: "multiple", raw: "1,2,3", want: []uint{1, 2, 3}},
		{name: "whitespace trimmed", raw: " 1, 2 ,3 ", want: []uint{1, 2, 3}},
		{name: "empty", raw: "", want: []uint{}},
		{name: "blank", raw: "   ", want: []uint{}},
		{name: "not a number", raw: "1,abc", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "float", raw: "1.5", wantErr: true},
		{name: "empty entry", raw: "1,,2", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseItemIDs(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func validCreatePointRequest() CreatePointRequest {
	return CreatePointRequest{
		Name:      "Mercado do Zé",
		Email:     "ze@example.com",
		Whatsapp:  "11999998888",
		Latitude:  -23.5329,
		Longitude: -46.7917,
		City:      "Osasco",
		UF:        "SP",
		Items:     []uint{1, 2},
	}
}

func TestCreatePointRequestValidate(t *testing.T) {
	req := validCreatePointRequest()
	assert.NoError(t, req.Validate())
}

func TestCreatePointRequestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *CreatePointRequest)
	}{
		{name: "missing name", mutate: func(req *CreatePointRequest) { req.Name = "" }},
		{name: "invalid email", mutate: func(req *CreatePointRequest) { req.Email = "nope" }},
		{name: "missing whatsapp", mutate: func(req *CreatePointRequest) { req.Whatsapp = "" }},
		{name: "latitude out of range", mutate: func(req *CreatePointRequest) { req.Latitude = 91 }},
		{name: "longitude out of range", mutate: func(req *CreatePointRequest) { req.Longitude = -181 }},
		{name: "missing city", mutate: func(req *CreatePointRequest) { req.City = "" }},
		{name: "uf wrong length", mutate: func(req *CreatePointRequest) { req.UF = "S" }},
		{name: "no items", mutate: func(req *CreatePointRequest) { req.Items = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreatePointRequest()
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
