package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/cashflow-journal/internal/model"
)

func TestPrompterConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       bool
		wantErrMsg bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "full yes any case", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty answer", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
		{name: "retry after junk", input: "maybe\ny\n", want: true, wantErrMsg: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "Delete everything?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Delete everything? [y/N]")
			if tt.wantErrMsg {
				assert.Contains(t, out.String(), "Please answer y or n.")
			}
		})
	}
}

func TestPrompterConfirmCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(strings.NewReader("y\n"), &bytes.Buffer{})
	_, err := p.Confirm(ctx, "Continue?")
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestPrompterRequire(t *testing.T) {
	var out bytes.Buffer

	p := NewPrompter(strings.NewReader(""), &out)
	require.NoError(t, p.Require(context.Background(), "Clear?", true))
	assert.Empty(t, out.String(), "force skips the question")

	p = NewPrompter(strings.NewReader("n\n"), &out)
	assert.ErrorIs(t, p.Require(context.Background(), "Clear?", false), ErrNotConfirmed)

	p = NewPrompter(strings.NewReader("y\n"), &out)
	assert.NoError(t, p.Require(context.Background(), "Clear?", false))
}

func TestFormatMoney(t *testing.T) {
	assert.Contains(t, FormatMoney(decimal.RequireFromString("1234.5")), "$1,234.50")
	assert.Contains(t, FormatMoney(decimal.RequireFromString("-400")), "-$400.00")
	assert.Equal(t, "$0.00", FormatMoney(decimal.Zero))

	assert.Contains(t, FormatSigned(decimal.NewFromInt(65), model.TypeExpense), "-$65.00")
	assert.Contains(t, FormatSigned(decimal.NewFromInt(65), model.TypeIncome), "+$65.00")
}

func TestRenderBox(t *testing.T) {
	box := RenderBox("Summary", "Net: $10.00")
	assert.Contains(t, box, "Summary")
	assert.Contains(t, box, "Net: $10.00")
}
