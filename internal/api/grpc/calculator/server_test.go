package calculator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	calculatorv1 "github.com/AraxHub/calc-proto/gen/go/calculator/v1"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_Calculate(t *testing.T) {
	tests := []struct {
		name     string
		retValue domain.Number
		retErr   error
		wantCode codes.Code
		want     float64
	}{
		{name: "успех", retValue: domain.Float(2.5), wantCode: codes.OK, want: 2.5},
		{name: "неизвестная операция", retErr: fmt.Errorf("%w: pow", domain.ErrUnknownOperation), wantCode: codes.InvalidArgument},
		{name: "деление на ноль", retErr: domain.ErrDivisionByZero, wantCode: codes.InvalidArgument},
		{name: "невалидный операнд", retErr: fmt.Errorf("%w: NaN", domain.ErrInvalidOperand), wantCode: codes.InvalidArgument},
		{name: "внутренняя ошибка", retErr: errors.New("notify observer 1: kafka down"), wantCode: codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := mocks.NewMockICalculatorUseCase(ctrl)
			uc.EXPECT().
				Calculate(gomock.Any(), "divide", domain.Float(5), domain.Float(2)).
				Return(tt.retValue, tt.retErr)

			s := New(uc, newTestLogger())
			resp, err := s.Calculate(context.Background(), &calculatorv1.CalculateRequest{Number1: 5, Number2: 2, Operation: "divide"})

			if tt.wantCode != codes.OK {
				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, st.Code())
				assert.Equal(t, tt.retErr.Error(), st.Message())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetResult())
		})
	}
}

func TestServer_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := newTestLogger()
	add := domain.NewCalculation(domain.NewOperation(domain.Addition{}, log), domain.Int(1), domain.Int(2))
	div := domain.NewCalculation(domain.NewOperation(domain.Division{}, log), domain.Int(1), domain.Int(0))

	uc := mocks.NewMockICalculatorUseCase(ctrl)
	uc.EXPECT().History(gomock.Any()).Return([]domain.Calculation{add, div})

	resp, err := New(uc, log).History(context.Background(), &calculatorv1.HistoryRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GetItems(), 2)

	first := resp.GetItems()[0]
	assert.Equal(t, int32(1), first.GetId())
	assert.Equal(t, "addition", first.GetOperation())
	assert.Equal(t, 3.0, first.GetResult())
	assert.Empty(t, first.GetMessage())
	assert.Equal(t, add.CreatedAt.UnixNano(), first.GetTimestampUnixNano())

	second := resp.GetItems()[1]
	assert.Equal(t, int32(2), second.GetId())
	assert.Equal(t, domain.ErrDivisionByZero.Error(), second.GetMessage())
}
