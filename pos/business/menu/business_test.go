package menu

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posapp/pos/mocks/store/menu_store"
	"posapp/pos/model"
	"posapp/pos/store/menuitems"
	"posapp/pos/store/pgtx"
)

func newTestBusiness(t *testing.T, id uuid.UUID) (*business, *menu_store.MockQuerier) {
	ctrl := gomock.NewController(t)
	mockRepo := menu_store.NewMockQuerier(ctrl)
	return &business{menuRepo: mockRepo, newID: func() uuid.UUID { return id }}, mockRepo
}

func TestCreateMenuItem(t *testing.T) {
	itemID := uuid.New()

	testCases := []struct {
		name          string
		itemName      string
		priceCents    int64
		setupMock     func(m *menu_store.MockQuerier)
		expectedCode  errs.ErrCode
		expectedError string
	}{
		{
			name:       "happy_case",
			itemName:   "  Flat White ",
			priceCents: 420,
			setupMock: func(m *menu_store.MockQuerier) {
				m.EXPECT().CreateMenuItem(gomock.Any(), menuitems.CreateMenuItemParams{
					ID:         pgtx.UUID(itemID),
					Name:       "Flat White",
					PriceCents: 420,
				}).Return(menuitems.MenuItem{ID: pgtx.UUID(itemID), Name: "Flat White", PriceCents: 420}, nil)
			},
			expectedCode: errs.OK,
		},
		{
			name:          "empty_name",
			itemName:      "   ",
			priceCents:    420,
			setupMock:     func(m *menu_store.MockQuerier) {},
			expectedCode:  errs.InvalidArgument,
			expectedError: "name is required",
		},
		{
			name:          "zero_price",
			itemName:      "Water",
			priceCents:    0,
			setupMock:     func(m *menu_store.MockQuerier) {},
			expectedCode:  errs.InvalidArgument,
			expectedError: "price must be greater than zero",
		},
		{
			name:       "general_error",
			itemName:   "Tea",
			priceCents: 250,
			setupMock: func(m *menu_store.MockQuerier) {
				m.EXPECT().CreateMenuItem(gomock.Any(), gomock.Any()).Return(menuitems.MenuItem{}, assert.AnError)
			},
			expectedCode:  errs.Internal,
			expectedError: "failed to create menu item",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, mockRepo := newTestBusiness(t, itemID)
			tc.setupMock(mockRepo)

			item, err := b.CreateMenuItem(context.Background(), tc.itemName, tc.priceCents)

			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if tc.expectedError != "" {
				assert.Nil(t, item)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NotNil(t, item)
			assert.Equal(t, itemID, item.ID)
			assert.Equal(t, "Flat White", item.Name)
		})
	}
}

func TestUpdateMenuItem(t *testing.T) {
	itemID := uuid.New()

	testCases := []struct {
		name         string
		mockReturn   menuitems.MenuItem
		mockError    error
		expectedCode errs.ErrCode
	}{
		{
			name:         "happy_case",
			mockReturn:   menuitems.MenuItem{ID: pgtx.UUID(itemID), Name: "Latte", PriceCents: 480},
			expectedCode: errs.OK,
		},
		{
			name:         "not_found",
			mockError:    pgx.ErrNoRows,
			expectedCode: errs.NotFound,
		},
		{
			name:         "general_error",
			mockError:    assert.AnError,
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, mockRepo := newTestBusiness(t, uuid.New())
			mockRepo.EXPECT().UpdateMenuItem(gomock.Any(), menuitems.UpdateMenuItemParams{
				ID:         pgtx.UUID(itemID),
				Name:       "Latte",
				PriceCents: 480,
			}).Return(tc.mockReturn, tc.mockError)

			item, err := b.UpdateMenuItem(context.Background(), itemID, "Latte", 480)

			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if tc.expectedCode == errs.OK {
				require.NotNil(t, item)
				assert.Equal(t, int64(480), item.PriceCents)
			}
		})
	}
}

func TestDeleteMenuItem(t *testing.T) {
	testCases := []struct {
		name         string
		affected     int64
		mockError    error
		expectedCode errs.ErrCode
	}{
		{name: "happy_case", affected: 1, expectedCode: errs.OK},
		{name: "not_found", affected: 0, expectedCode: errs.NotFound},
		{name: "general_error", mockError: assert.AnError, expectedCode: errs.Internal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			itemID := uuid.New()
			b, mockRepo := newTestBusiness(t, uuid.New())
			mockRepo.EXPECT().DeleteMenuItem(gomock.Any(), pgtx.UUID(itemID)).Return(tc.affected, tc.mockError)

			err := b.DeleteMenuItem(context.Background(), itemID)

			assert.Equal(t, tc.expectedCode, errs.Code(err))
		})
	}
}

func TestListMenuItems(t *testing.T) {
	testCases := []struct {
		name           string
		query          string
		expectedFilter pgtype.Text
	}{
		{name: "no_filter", query: "", expectedFilter: pgtype.Text{}},
		{name: "blank_filter", query: "  ", expectedFilter: pgtype.Text{}},
		{name: "name_filter", query: " latte ", expectedFilter: pgtype.Text{String: "latte", Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, mockRepo := newTestBusiness(t, uuid.New())
			mockRepo.EXPECT().ListMenuItems(gomock.Any(), menuitems.ListMenuItemsParams{
				NameFilter: tc.expectedFilter,
				Limit:      20,
				Offset:     20,
			}).Return([]menuitems.MenuItem{{ID: pgtx.UUID(uuid.New()), Name: "Latte", PriceCents: 480}}, nil)
			mockRepo.EXPECT().CountMenuItems(gomock.Any(), tc.expectedFilter).Return(int64(21), nil)

			items, total, err := b.ListMenuItems(context.Background(), tc.query, model.NewPage(1, 0))

			require.NoError(t, err)
			assert.Len(t, items, 1)
			assert.Equal(t, int64(21), total)
		})
	}
}
