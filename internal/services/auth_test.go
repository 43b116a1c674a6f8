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

var _ = Describe("AuthService", func() {
	var (
		ctx context.Context
		s   *store.Store
		svc *services.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = newTestStore(ctx)
		svc = services.NewAuthService(s, "test-secret", time.Hour)

		_, creds, err := services.NewPersonnelService(s).Register(ctx, models.Record{
			"first_name": "Dana",
			"last_name":  "Reyes",
			"rank":       "Captain",
			"role":       "admin",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(creds.Username).To(Equal("dreyes"))

		// Replace the generated password with a known one.
		matches, err := s.Records().FindByField(ctx, store.CollectionPersonnel, "username", "dreyes")
		Expect(err).NotTo(HaveOccurred())
		Expect(matches).To(HaveLen(1))
		hash, err := bcrypt.GenerateFromPassword([]byte("hunter2-hunter2"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		rec := matches[0]
		rec["password_hash"] = string(hash)
		_, err = s.Records().Update(ctx, store.CollectionPersonnel, rec)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		s.Close()
	})

	Describe("Login", func() {
		It("should issue a token and persist the session snapshot", func() {
			// Act
			user, token, err := svc.Login(ctx, "dreyes", "hunter2-hunter2")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
			Expect(user.Username).To(Equal("dreyes"))
			Expect(user.FullName).To(Equal("Dana Reyes"))
			Expect(user.Role).To(Equal("admin"))

			stored, err := s.Session().GetCurrentUser(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Username).To(Equal("dreyes"))
		})

		It("should reject a wrong password", func() {
			_, _, err := svc.Login(ctx, "dreyes", "wrong")
			Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
		})

		It("should reject an unknown username", func() {
			_, _, err := svc.Login(ctx, "nobody", "hunter2-hunter2")
			Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
		})

		// Last login wins: the snapshot key is fixed, a second login
		// overwrites it.
		It("should overwrite the previous snapshot", func() {
			_, creds, err := services.NewPersonnelService(s).Register(ctx, models.Record{
				"first_name": "Liam",
				"last_name":  "Ortiz",
			})
			Expect(err).NotTo(HaveOccurred())

			_, _, err = svc.Login(ctx, "dreyes", "hunter2-hunter2")
			Expect(err).NotTo(HaveOccurred())
			_, _, err = svc.Login(ctx, creds.Username, creds.Password)
			Expect(err).NotTo(HaveOccurred())

			stored, err := s.Session().GetCurrentUser(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Username).To(Equal("lortiz"))
		})
	})

	Describe("CurrentUser", func() {
		It("should fail before any login", func() {
			_, err := svc.CurrentUser(ctx)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Describe("Logout", func() {
		It("should clear the snapshot and stay idempotent", func() {
			_, _, err := svc.Login(ctx, "dreyes", "hunter2-hunter2")
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Logout(ctx)).To(Succeed())
			Expect(svc.Logout(ctx)).To(Succeed())

			_, err = svc.CurrentUser(ctx)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Describe("ParseToken", func() {
		It("should round-trip the claims", func() {
			user, token, err := svc.Login(ctx, "dreyes", "hunter2-hunter2")
			Expect(err).NotTo(HaveOccurred())

			claims, err := svc.ParseToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.PersonnelID).To(Equal(user.PersonnelID))
			Expect(claims.Username).To(Equal("dreyes"))
			Expect(claims.Role).To(Equal("admin"))
		})

		It("should reject a token signed with another secret", func() {
			other := services.NewAuthService(s, "other-secret", time.Hour)
			_, token, err := other.Login(ctx, "dreyes", "hunter2-hunter2")
			Expect(err).NotTo(HaveOccurred())

			_, parseErr := svc.ParseToken(token)
			Expect(srvErrors.IsUnauthorizedError(parseErr)).To(BeTrue())
		})

		It("should reject an expired token", func() {
			expired := services.NewAuthService(s, "test-secret", -time.Minute)
			_, token, err := expired.Login(ctx, "dreyes", "hunter2-hunter2")
			Expect(err).NotTo(HaveOccurred())

			_, parseErr := svc.ParseToken(token)
			Expect(srvErrors.IsUnauthorizedError(parseErr)).To(BeTrue())
		})
	})
})
