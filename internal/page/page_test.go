package page_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/openaudit/internal/page"
)

func TestPage_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   page.Page
		want page.Page
	}{
		{name: "Defaults", in: page.Page{}, want: page.Page{Skip: 0, Limit: page.DefaultLimit}},
		{name: "NegativeSkip", in: page.Page{Skip: -5, Limit: 10}, want: page.Page{Skip: 0, Limit: 10}},
		{name: "CappedLimit", in: page.Page{Skip: 20, Limit: 5000}, want: page.Page{Skip: 20, Limit: page.MaxLimit}},
		{name: "Untouched", in: page.Page{Skip: 3, Limit: 7}, want: page.Page{Skip: 3, Limit: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}
