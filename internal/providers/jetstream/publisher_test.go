package jetstream_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palettehq/marketplace-sync/internal/adapter"
	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/logger"
	"github.com/palettehq/marketplace-sync/internal/mocks"
	"github.com/palettehq/marketplace-sync/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testPublisherConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "MARKETPLACE_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "sync-worker-test",
	}
}

func TestPublishEvent(t *testing.T) {
	ctx := context.Background()

	event := &domain.MarketplaceEvent{
		EventID:     "01J00000000000000000000000",
		EventType:   domain.EventTypeCardMinted,
		Network:     domain.NetworkEthereum,
		Contract:    "0xabc0000000000000000000000000000000000001",
		CardID:      "0xabc0000000000000000000000000000000000001-0x7",
		Amount:      10,
		BlockNumber: 50,
	}

	t.Run("publishes to the network and event-type subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		conn := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(conn, js, nil)
		js.EXPECT().
			Publish(ctx, "marketplace.ethereum.card.minted", gomock.Any()).
			Return(&natsjetstream.PubAck{}, nil)

		publisher, err := jetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
		require.NoError(t, err)

		require.NoError(t, publisher.PublishEvent(ctx, event))
	})

	t.Run("publish failure is returned to the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		conn := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
		js.EXPECT().
			Publish(ctx, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("no responders available"))

		publisher, err := jetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
		require.NoError(t, err)

		assert.Error(t, publisher.PublishEvent(ctx, event))
	})

	t.Run("connection failure aborts construction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("connection refused"))

		_, err := jetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
		assert.Error(t, err)
	})

	t.Run("close tears down the connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		natsJS := mocks.NewMockNatsJetStream(ctrl)
		conn := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
		conn.EXPECT().Close()

		publisher, err := jetstream.NewPublisher(testPublisherConfig(), natsJS, adapter.NewJSON())
		require.NoError(t, err)

		publisher.Close()
	})
}
