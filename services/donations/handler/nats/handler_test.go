package nats

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sparechange/roundup/services/donations/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFeedSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockDonationUC(ctrl)
	handler := NewNatsHandler(uc, nil)

	userID := uuid.New()
	uc.EXPECT().RunRoundUpSweep(gomock.Any(), userID).Return(nil)

	err := handler.handleFeedSync([]byte(`{"user_id":"` + userID.String() + `"}`))
	require.NoError(t, err)
}

func TestHandleFeedSyncRejectsMissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockDonationUC(ctrl)
	handler := NewNatsHandler(uc, nil)

	err := handler.handleFeedSync([]byte(`{}`))
	assert.Error(t, err)
}

func TestHandleFeedSyncRejectsMalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockDonationUC(ctrl)
	handler := NewNatsHandler(uc, nil)

	err := handler.handleFeedSync([]byte(`not json`))
	assert.Error(t, err)
}
