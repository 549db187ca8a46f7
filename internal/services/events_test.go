package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodaid/blood-donation-backend/internal/models"
	"github.com/bloodaid/blood-donation-backend/internal/services"
)

func TestEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("publishes event keyed by subject", func(t *testing.T) {
		writer := services.NewMockKafkaWriter(ctrl)
		publisher := services.NewEventPublisher(writer)

		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, "donor-1", string(msgs[0].Key))

				var event models.AccountEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.EventDonorRegistered, event.Type)
				assert.Equal(t, "donor-1", event.SubjectID)
				assert.Equal(t, "ada@example.com", event.Email)
				assert.NotEmpty(t, event.EventID)
				assert.NotZero(t, event.Timestamp)
				return nil
			})

		publisher.Publish(ctx, models.EventDonorRegistered, "donor-1", "ada@example.com")
	})

	t.Run("nil writer skips publishing", func(t *testing.T) {
		publisher := services.NewEventPublisher(nil)

		assert.NotPanics(t, func() {
			publisher.Publish(ctx, models.EventDonorRegistered, "donor-1", "ada@example.com")
		})
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		writer := services.NewMockKafkaWriter(ctrl)
		publisher := services.NewEventPublisher(writer)

		writer.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			publisher.Publish(ctx, models.EventDonorPasswordReset, "donor-1", "ada@example.com")
		})
	})
}
