package service

import (
	"testing"

	"github.com/diegoclair/weekday-api/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockLookupRepo  *mocks.MockLookupRepo
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	lookupRepo := mocks.NewMockLookupRepo(ctrl)
	dm.EXPECT().Lookup().Return(lookupRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockLookupRepo:  lookupRepo,
	}

	// validate service creation
	dayService := newDayService(dm, "Canada/Mountain")
	require.NotNil(t, dayService)

	return
}
