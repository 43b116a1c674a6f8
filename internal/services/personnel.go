package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	"github.com/firehall/personnel-agent/internal/util"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

// Leave accrual rates in days per month of service.
const (
	vacationAccrualRate  = 1.25
	sickAccrualRate      = 1.25
	emergencyAccrualRate = 0.5
)

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const generatedPasswordLength = 12

type PersonnelService struct {
	store *store.Store
}

func NewPersonnelService(st *store.Store) *PersonnelService {
	return &PersonnelService{store: st}
}

// Credentials are the login credentials generated at registration. The
// plaintext password is returned exactly once; only its hash is persisted.
type Credentials struct {
	Username string
	Password string
}

// Register creates a personnel record from the registration form fields,
// generates its credentials, and initializes the leave accrual counters.
func (s *PersonnelService) Register(ctx context.Context, input models.Record) (models.Record, *Credentials, error) {
	rec := input.Clone()
	delete(rec, "id")

	first := strings.TrimSpace(rec.String("first_name"))
	last := strings.TrimSpace(rec.String("last_name"))
	if first == "" && last == "" {
		return nil, nil, srvErrors.NewValidationError("first_name or last_name is required")
	}

	username, err := s.uniqueUsername(ctx, first, last)
	if err != nil {
		return nil, nil, err
	}
	password, err := generatePassword()
	if err != nil {
		return nil, nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	rec["username"] = username
	rec["password_hash"] = string(hash)
	rec["earned_vacation"] = 0.0
	rec["earned_sick"] = 0.0
	rec["earned_emergency"] = 0.0
	rec["last_accrual"] = now.Format(time.RFC3339)
	rec["created_at"] = now.Format(time.RFC3339)
	rec["updated_at"] = now.Format(time.RFC3339)
	delete(rec, "password")

	stored, err := s.store.Records().Add(ctx, store.CollectionPersonnel, rec)
	if err != nil {
		return nil, nil, err
	}
	zap.S().Named("personnel_service").Infow("personnel registered",
		"id", stored["id"], "username", username)
	return stored, &Credentials{Username: username, Password: password}, nil
}

func (s *PersonnelService) List(ctx context.Context) ([]models.Record, error) {
	return s.store.Records().GetAll(ctx, store.CollectionPersonnel)
}

func (s *PersonnelService) Get(ctx context.Context, key any) (models.Record, error) {
	return s.store.Records().Get(ctx, store.CollectionPersonnel, key)
}

func (s *PersonnelService) FindByUsername(ctx context.Context, username string) (models.Record, error) {
	matches, err := s.store.Records().FindByField(ctx, store.CollectionPersonnel, "username", username)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, srvErrors.NewResourceNotFoundError("personnel record")
	}
	return matches[0], nil
}

// Update overwrites a personnel record wholesale. The credential fields are
// carried over from the stored record so an edit form cannot drop them.
func (s *PersonnelService) Update(ctx context.Context, rec models.Record) (models.Record, error) {
	id, ok := rec.ID()
	if !ok {
		return nil, srvErrors.NewMissingKeyError(store.CollectionPersonnel)
	}
	current, err := s.store.Records().Get(ctx, store.CollectionPersonnel, id)
	if err != nil {
		return nil, err
	}

	updated := rec.Clone()
	for _, field := range []string{"username", "password_hash", "earned_vacation", "earned_sick", "earned_emergency", "last_accrual", "created_at"} {
		if _, ok := updated[field]; !ok {
			if v, ok := current[field]; ok {
				updated[field] = v
			}
		}
	}
	updated["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	return s.store.Records().Update(ctx, store.CollectionPersonnel, updated)
}

func (s *PersonnelService) Delete(ctx context.Context, key any) error {
	return s.store.Records().Delete(ctx, store.CollectionPersonnel, key)
}

// Promote sets a new rank and stamps the promotion date.
func (s *PersonnelService) Promote(ctx context.Context, key any, rank string) (models.Record, error) {
	if strings.TrimSpace(rank) == "" {
		return nil, srvErrors.NewValidationError("rank is required")
	}
	rec, err := s.store.Records().Get(ctx, store.CollectionPersonnel, key)
	if err != nil {
		return nil, err
	}
	rec["rank"] = rank
	rec["promoted_at"] = time.Now().UTC().Format(time.RFC3339)
	rec["updated_at"] = rec["promoted_at"]
	return s.store.Records().Update(ctx, store.CollectionPersonnel, rec)
}

// AccrueLeave walks every personnel record and credits the leave counters
// for each full month elapsed since the record's last accrual. Safe to call
// on any schedule; months are only counted once.
func (s *PersonnelService) AccrueLeave(ctx context.Context, now time.Time) (int, error) {
	log := zap.S().Named("personnel_service")
	personnel, err := s.store.Records().GetAll(ctx, store.CollectionPersonnel)
	if err != nil {
		return 0, err
	}

	accrued := 0
	for _, rec := range personnel {
		last, err := time.Parse(time.RFC3339, rec.String("last_accrual"))
		if err != nil {
			// legacy record without a usable marker, start counting from now
			rec["last_accrual"] = now.UTC().Format(time.RFC3339)
			if _, err := s.store.Records().Update(ctx, store.CollectionPersonnel, rec); err != nil {
				return accrued, err
			}
			continue
		}
		months := monthsBetween(last, now)
		if months == 0 {
			continue
		}
		rec["earned_vacation"] = util.Round(floatField(rec, "earned_vacation") + float64(months)*vacationAccrualRate)
		rec["earned_sick"] = util.Round(floatField(rec, "earned_sick") + float64(months)*sickAccrualRate)
		rec["earned_emergency"] = util.Round(floatField(rec, "earned_emergency") + float64(months)*emergencyAccrualRate)
		rec["last_accrual"] = last.AddDate(0, months, 0).Format(time.RFC3339)
		if _, err := s.store.Records().Update(ctx, store.CollectionPersonnel, rec); err != nil {
			return accrued, err
		}
		accrued++
		log.Debugw("leave accrued", "personnel", rec["id"], "months", months)
	}
	return accrued, nil
}

func (s *PersonnelService) uniqueUsername(ctx context.Context, first, last string) (string, error) {
	base := sanitizeUsername(first, last)
	candidate := base
	for i := 2; ; i++ {
		matches, err := s.store.Records().FindByField(ctx, store.CollectionPersonnel, "username", candidate)
		if err != nil {
			return "", err
		}
		if len(matches) == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

func sanitizeUsername(first, last string) string {
	clean := func(s string) string {
		var b strings.Builder
		for _, r := range strings.ToLower(s) {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		return b.String()
	}
	first = clean(first)
	last = clean(last)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first[:1] + last
	}
}

func generatePassword() (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := 0; i < generatedPasswordLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(passwordAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func floatField(rec models.Record, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// monthsBetween counts the whole months elapsed from a to b.
func monthsBetween(a, b time.Time) int {
	if !a.Before(b) {
		return 0
	}
	months := 0
	for !a.AddDate(0, months+1, 0).After(b) {
		months++
	}
	return months
}
