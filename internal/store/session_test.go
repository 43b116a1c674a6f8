package store_test

import (
	"context"
	"database/sql"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	"github.com/firehall/personnel-agent/internal/store/migrations"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

var _ = Describe("SessionStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	snapshot := func(username string) *models.UserSnapshot {
		return &models.UserSnapshot{
			PersonnelID: 1,
			Username:    username,
			FullName:    "Jordan Doe",
			Rank:        "Captain",
			Role:        "admin",
			LoginAt:     time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		}
	}

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("GetCurrentUser", func() {
		// Given no one has logged in
		// When we read the session
		// Then it should return SessionNotFoundError
		It("should return SessionNotFoundError when no session exists", func() {
			_, err := s.Session().GetCurrentUser(ctx)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return the stored snapshot", func() {
			// Arrange
			Expect(s.Session().SetCurrentUser(ctx, snapshot("jdoe"))).To(Succeed())

			// Act
			user, err := s.Session().GetCurrentUser(ctx)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("jdoe"))
			Expect(user.Rank).To(Equal("Captain"))
			Expect(user.LoginAt).To(Equal(snapshot("jdoe").LoginAt))
		})
	})

	Context("SetCurrentUser", func() {
		// Concurrent logins race on a single session row; the last write
		// wins without error.
		It("should overwrite the previous snapshot", func() {
			Expect(s.Session().SetCurrentUser(ctx, snapshot("first"))).To(Succeed())
			Expect(s.Session().SetCurrentUser(ctx, snapshot("second"))).To(Succeed())

			user, err := s.Session().GetCurrentUser(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("second"))
		})
	})

	Context("ClearCurrentUser", func() {
		It("should remove the session", func() {
			Expect(s.Session().SetCurrentUser(ctx, snapshot("jdoe"))).To(Succeed())
			Expect(s.Session().ClearCurrentUser(ctx)).To(Succeed())

			_, err := s.Session().GetCurrentUser(ctx)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should be idempotent", func() {
			Expect(s.Session().ClearCurrentUser(ctx)).To(Succeed())
			Expect(s.Session().ClearCurrentUser(ctx)).To(Succeed())
		})
	})
})
