package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/services"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

var _ = Describe("LeaveService", func() {
	var (
		ctx context.Context
		s   *store.Store
		svc *services.LeaveService
	)

	submit := func(overrides models.Record) models.Record {
		input := models.Record{
			"personnel_id": int64(1),
			"leave_type":   "Vacation",
			"start_date":   "2026-09-07",
			"end_date":     "2026-09-11",
		}
		for k, v := range overrides {
			input[k] = v
		}
		rec, err := svc.Submit(ctx, input)
		Expect(err).NotTo(HaveOccurred())
		return rec
	}

	BeforeEach(func() {
		ctx = context.Background()
		s = newTestStore(ctx)
		svc = services.NewLeaveService(s)
	})

	AfterEach(func() {
		s.Close()
	})

	Describe("Submit", func() {
		// Given a request spanning five calendar days
		// When it is submitted
		// Then num_days is derived inclusively and status starts Pending
		It("should derive the inclusive day count", func() {
			rec := submit(nil)
			Expect(rec["num_days"]).To(BeEquivalentTo(5))
			Expect(rec.String("status")).To(Equal("Pending"))
		})

		It("should count a single-day request as one day", func() {
			rec := submit(models.Record{"end_date": "2026-09-07"})
			Expect(rec["num_days"]).To(BeEquivalentTo(1))
		})

		// A caller-supplied day count is never trusted.
		It("should ignore a caller-supplied num_days", func() {
			rec := submit(models.Record{"num_days": 99})
			Expect(rec["num_days"]).To(BeEquivalentTo(5))
		})

		// Older dashboard revisions send camelCase field names.
		It("should accept legacy camelCase fields", func() {
			rec, err := svc.Submit(ctx, models.Record{
				"personnelId": "1",
				"leaveType":   "Sick",
				"startDate":   "2026-09-07",
				"endDate":     "2026-09-08",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.String("leave_type")).To(Equal("Sick"))
			Expect(rec["personnel_id"]).To(BeEquivalentTo(1))
			Expect(rec).NotTo(HaveKey("leaveType"))
			Expect(rec["num_days"]).To(BeEquivalentTo(2))
		})

		It("should reject a reversed date range", func() {
			_, err := svc.Submit(ctx, models.Record{
				"personnel_id": int64(1),
				"leave_type":   "Vacation",
				"start_date":   "2026-09-11",
				"end_date":     "2026-09-07",
			})
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		It("should require personnel_id", func() {
			_, err := svc.Submit(ctx, models.Record{
				"leave_type": "Vacation",
				"start_date": "2026-09-07",
				"end_date":   "2026-09-08",
			})
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Describe("Update", func() {
		It("should modify a pending request", func() {
			rec := submit(nil)
			rec["end_date"] = "2026-09-09"

			updated, err := svc.Update(ctx, rec)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated["num_days"]).To(BeEquivalentTo(3))
		})

		// Given an approved request
		// When the requester tries to modify it
		// Then the change is rejected
		It("should refuse to modify a decided request", func() {
			rec := submit(nil)
			_, err := svc.Approve(ctx, rec)
			Expect(err).NotTo(HaveOccurred())

			rec["end_date"] = "2026-09-09"
			_, err = svc.Update(ctx, rec)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("should withdraw a pending request", func() {
			rec := submit(nil)
			Expect(svc.Delete(ctx, rec)).To(Succeed())

			remaining, err := svc.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(remaining).To(BeEmpty())
		})

		It("should refuse to withdraw a decided request", func() {
			rec := submit(nil)
			_, err := svc.Reject(ctx, rec)
			Expect(err).NotTo(HaveOccurred())

			err = svc.Delete(ctx, rec)
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Describe("Approve and Reject", func() {
		It("should settle a pending request exactly once", func() {
			rec := submit(nil)

			decided, err := svc.Approve(ctx, rec)
			Expect(err).NotTo(HaveOccurred())
			Expect(decided.String("status")).To(Equal("Approved"))
			Expect(decided.String("decided_at")).NotTo(BeEmpty())

			_, err = svc.Reject(ctx, rec)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Describe("ListByPersonnel", func() {
		It("should return only the member's requests", func() {
			submit(nil)
			submit(models.Record{"personnel_id": int64(2)})

			records, err := svc.ListByPersonnel(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
		})
	})
})
