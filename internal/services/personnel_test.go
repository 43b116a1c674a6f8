package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/services"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

var _ = Describe("PersonnelService", func() {
	var (
		ctx context.Context
		s   *store.Store
		svc *services.PersonnelService
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = newTestStore(ctx)
		svc = services.NewPersonnelService(s)
	})

	AfterEach(func() {
		s.Close()
	})

	Describe("Register", func() {
		// Given a registration form
		// When the member is registered
		// Then credentials are generated and only the hash is stored
		It("should generate credentials and store only the password hash", func() {
			// Act
			rec, creds, err := svc.Register(ctx, models.Record{
				"first_name": "Jordan",
				"last_name":  "Doe",
				"rank":       "Firefighter",
			})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(creds.Username).To(Equal("jdoe"))
			Expect(creds.Password).To(HaveLen(12))
			Expect(rec).NotTo(HaveKey("password"))

			err = bcrypt.CompareHashAndPassword([]byte(rec.String("password_hash")), []byte(creds.Password))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should deduplicate usernames with a numeric suffix", func() {
			_, first, err := svc.Register(ctx, models.Record{"first_name": "Jordan", "last_name": "Doe"})
			Expect(err).NotTo(HaveOccurred())
			_, second, err := svc.Register(ctx, models.Record{"first_name": "Jamie", "last_name": "Doe"})
			Expect(err).NotTo(HaveOccurred())

			Expect(first.Username).To(Equal("jdoe"))
			Expect(second.Username).To(Equal("jdoe2"))
		})

		It("should initialize the leave counters", func() {
			rec, _, err := svc.Register(ctx, models.Record{"first_name": "Jordan", "last_name": "Doe"})
			Expect(err).NotTo(HaveOccurred())

			Expect(rec["earned_vacation"]).To(BeEquivalentTo(0))
			Expect(rec["earned_sick"]).To(BeEquivalentTo(0))
			Expect(rec["earned_emergency"]).To(BeEquivalentTo(0))
			Expect(rec.String("last_accrual")).NotTo(BeEmpty())
		})

		It("should require a name", func() {
			_, _, err := svc.Register(ctx, models.Record{"rank": "Captain"})
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		// Given a registered member
		// When an edit form without credential fields is saved
		// Then username, hash and counters survive the rewrite
		It("should carry credential and accrual fields over", func() {
			rec, creds, err := svc.Register(ctx, models.Record{"first_name": "Jordan", "last_name": "Doe"})
			Expect(err).NotTo(HaveOccurred())

			id, _ := rec.ID()
			updated, err := svc.Update(ctx, models.Record{
				"id":         id,
				"first_name": "Jordan",
				"last_name":  "Doe",
				"rank":       "Lieutenant",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.String("username")).To(Equal(creds.Username))
			Expect(updated.String("password_hash")).NotTo(BeEmpty())
			Expect(updated).To(HaveKey("earned_vacation"))
			Expect(updated.String("rank")).To(Equal("Lieutenant"))
		})

		It("should return MissingKeyError without an id", func() {
			_, err := svc.Update(ctx, models.Record{"first_name": "Jordan"})
			Expect(srvErrors.IsMissingKeyError(err)).To(BeTrue())
		})
	})

	Describe("Promote", func() {
		It("should set the rank and stamp the promotion", func() {
			rec, _, err := svc.Register(ctx, models.Record{"first_name": "Jordan", "last_name": "Doe"})
			Expect(err).NotTo(HaveOccurred())

			promoted, err := svc.Promote(ctx, rec, "Captain")
			Expect(err).NotTo(HaveOccurred())
			Expect(promoted.String("rank")).To(Equal("Captain"))
			Expect(promoted.String("promoted_at")).NotTo(BeEmpty())
		})
	})

	Describe("AccrueLeave", func() {
		register := func(lastAccrual time.Time) models.Record {
			rec, _, err := svc.Register(ctx, models.Record{"first_name": "Jordan", "last_name": "Doe"})
			Expect(err).NotTo(HaveOccurred())
			rec["last_accrual"] = lastAccrual.Format(time.RFC3339)
			rec, err = s.Records().Update(ctx, store.CollectionPersonnel, rec)
			Expect(err).NotTo(HaveOccurred())
			return rec
		}

		// Given a member whose last accrual was three months ago
		// When accrual runs
		// Then three months of each rate are credited
		It("should credit each full elapsed month", func() {
			now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
			rec := register(now.AddDate(0, -3, 0))

			accrued, err := svc.AccrueLeave(ctx, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(accrued).To(Equal(1))

			id, _ := rec.ID()
			stored, err := svc.Get(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored["earned_vacation"]).To(BeEquivalentTo(3.75))
			Expect(stored["earned_sick"]).To(BeEquivalentTo(3.75))
			Expect(stored["earned_emergency"]).To(BeEquivalentTo(1.5))
		})

		// Months are only counted once regardless of schedule.
		It("should not double-credit on consecutive runs", func() {
			now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
			rec := register(now.AddDate(0, -1, 0))

			_, err := svc.AccrueLeave(ctx, now)
			Expect(err).NotTo(HaveOccurred())
			accrued, err := svc.AccrueLeave(ctx, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(accrued).To(BeZero())

			id, _ := rec.ID()
			stored, err := svc.Get(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored["earned_vacation"]).To(BeEquivalentTo(1.25))
		})

		It("should skip members with no elapsed month", func() {
			now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
			register(now.AddDate(0, 0, -10))

			accrued, err := svc.AccrueLeave(ctx, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(accrued).To(BeZero())
		})
	})

	Describe("FindByUsername", func() {
		It("should find the record through the username index", func() {
			_, creds, err := svc.Register(ctx, models.Record{"first_name": "Jordan", "last_name": "Doe"})
			Expect(err).NotTo(HaveOccurred())

			rec, err := svc.FindByUsername(ctx, creds.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.String("first_name")).To(Equal("Jordan"))
		})

		It("should return ResourceNotFoundError for an unknown username", func() {
			_, err := svc.FindByUsername(ctx, "ghost")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})
