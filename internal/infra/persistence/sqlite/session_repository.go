package sqlite

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/infra/persistence/model"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var allSlots = []string{
	repository.SlotAccessToken,
	repository.SlotRefreshToken,
	repository.SlotUser,
}

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Get returns the persisted session.
func (repo *sessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	var rows []model.SessionSlotModel
	if err := repo.db.WithContext(ctx).Where("name IN ?", allSlots).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read session slots")
	}

	session := &entity.Session{}
	for _, row := range rows {
		switch row.Name {
		case repository.SlotAccessToken:
			session.AccessToken = row.Value
		case repository.SlotRefreshToken:
			session.RefreshToken = row.Value
		case repository.SlotUser:
			user, err := toUserDomain(row.Value)
			if err != nil {
				return nil, err
			}
			session.User = user
		}
	}

	return session, nil
}

// Set overwrites all three slots in one transaction.
func (repo *sessionRepository) Set(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return repo.Clear(ctx)
	}

	values := map[string]string{
		repository.SlotAccessToken:  session.AccessToken,
		repository.SlotRefreshToken: session.RefreshToken,
	}
	if session.User != nil {
		raw, err := fromUserDomain(session.User)
		if err != nil {
			return err
		}
		values[repository.SlotUser] = raw
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, slot := range allSlots {
			value, ok := values[slot]
			if !ok || value == "" {
				if err := tx.Where("name = ?", slot).Delete(&model.SessionSlotModel{}).Error; err != nil {
					return errors.Wrapf(err, "failed to clear slot %s", slot)
				}

				continue
			}

			if err := upsertSlot(tx, slot, value); err != nil {
				return err
			}
		}

		return nil
	})

	return errors.Wrap(err, "failed to write session")
}

// SetAccessToken replaces only the access token slot.
func (repo *sessionRepository) SetAccessToken(ctx context.Context, accessToken string) error {
	db := repo.db.WithContext(ctx)
	if accessToken == "" {
		return errors.Wrap(
			db.Where("name = ?", repository.SlotAccessToken).Delete(&model.SessionSlotModel{}).Error,
			"failed to clear access token",
		)
	}

	return upsertSlot(db, repository.SlotAccessToken, accessToken)
}

// Clear removes all three slots in one transaction.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("name IN ?", allSlots).Delete(&model.SessionSlotModel{}).Error
	})

	return errors.Wrap(err, "failed to clear session")
}

func upsertSlot(db *gorm.DB, key, value string) error {
	row := &model.SessionSlotModel{Name: key, Value: value}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(row).Error

	return errors.Wrapf(err, "failed to write slot %s", key)
}

func fromUserDomain(user *entity.User) (string, error) {
	raw, err := json.Marshal(&model.UserSnapshot{
		ID:          user.ID,
		Email:       user.Email,
		Role:        string(user.Role),
		DisplayName: user.DisplayName,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode user snapshot")
	}

	return string(raw), nil
}

func toUserDomain(raw string) (*entity.User, error) {
	if raw == "" {
		return nil, nil
	}

	var snapshot model.UserSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode user snapshot")
	}

	return &entity.User{
		ID:          snapshot.ID,
		Email:       snapshot.Email,
		Role:        entity.Role(snapshot.Role),
		DisplayName: snapshot.DisplayName,
	}, nil
}
