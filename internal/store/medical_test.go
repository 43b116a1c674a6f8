package store_test

import (
	"context"
	"database/sql"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/uuid"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	"github.com/firehall/personnel-agent/internal/store/migrations"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

var _ = Describe("MedicalRecordStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	newRecord := func(personnelID int64, name string, recordType models.RecordType) *models.MedicalRecord {
		return &models.MedicalRecord{
			ID:           uuid.NewString(),
			PersonnelID:  personnelID,
			DocumentName: name,
			RecordType:   recordType,
			FileData:     []byte{0x25, 0x50, 0x44, 0x46},
			FileType:     "application/pdf",
			FileSize:     4,
			UploadDate:   time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC),
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

	Context("Insert and Get", func() {
		It("should round-trip a record including the file payload", func() {
			// Arrange
			rec := newRecord(1, "physical.pdf", models.RecordTypeCheckup)

			// Act
			Expect(s.MedicalRecords().Insert(ctx, rec)).To(Succeed())
			stored, err := s.MedicalRecords().Get(ctx, rec.ID)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.DocumentName).To(Equal("physical.pdf"))
			Expect(stored.RecordType).To(Equal(models.RecordTypeCheckup))
			Expect(stored.FileData).To(Equal(rec.FileData))
			Expect(stored.FileSize).To(Equal(int64(4)))
		})

		It("should return ResourceNotFoundError for an unknown id", func() {
			_, err := s.MedicalRecords().Get(ctx, uuid.NewString())
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			Expect(s.MedicalRecords().Insert(ctx, newRecord(1, "physical.pdf", models.RecordTypeCheckup))).To(Succeed())
			Expect(s.MedicalRecords().Insert(ctx, newRecord(1, "xray.png", models.RecordTypeImaging))).To(Succeed())
			Expect(s.MedicalRecords().Insert(ctx, newRecord(2, "dental.pdf", models.RecordTypeDental))).To(Succeed())
		})

		// Bulk listings carry metadata only; payloads are fetched one at a
		// time through Get.
		It("should not include file payloads", func() {
			records, err := s.MedicalRecords().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			for _, rec := range records {
				Expect(rec.FileData).To(BeEmpty())
				Expect(rec.FileSize).To(BeNumerically(">", 0))
			}
		})

		It("should filter by personnel", func() {
			records, err := s.MedicalRecords().List(ctx, store.ByPersonnel(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
		})

		It("should filter by record type", func() {
			records, err := s.MedicalRecords().List(ctx, store.ByRecordType(models.RecordTypeDental))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].DocumentName).To(Equal("dental.pdf"))
		})

		It("should combine filters", func() {
			records, err := s.MedicalRecords().List(ctx,
				store.ByPersonnel(1), store.ByRecordType(models.RecordTypeImaging))
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].DocumentName).To(Equal("xray.png"))
		})
	})

	Context("Delete", func() {
		It("should remove a record by id", func() {
			rec := newRecord(1, "physical.pdf", models.RecordTypeCheckup)
			Expect(s.MedicalRecords().Insert(ctx, rec)).To(Succeed())

			Expect(s.MedicalRecords().Delete(ctx, rec.ID)).To(Succeed())
			_, err := s.MedicalRecords().Get(ctx, rec.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should be a no-op for an unknown id", func() {
			Expect(s.MedicalRecords().Delete(ctx, uuid.NewString())).To(Succeed())
		})
	})

	Context("DeleteByKey", func() {
		It("should remove every record for the personnel and document pair", func() {
			Expect(s.MedicalRecords().Insert(ctx, newRecord(1, "physical.pdf", models.RecordTypeCheckup))).To(Succeed())
			Expect(s.MedicalRecords().Insert(ctx, newRecord(1, "physical.pdf", models.RecordTypeGeneral))).To(Succeed())
			Expect(s.MedicalRecords().Insert(ctx, newRecord(1, "xray.png", models.RecordTypeImaging))).To(Succeed())

			removed, err := s.MedicalRecords().DeleteByKey(ctx, models.DocumentKey{
				PersonnelID:  1,
				DocumentName: "physical.pdf",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal(int64(2)))

			remaining, err := s.MedicalRecords().List(ctx, store.ByPersonnel(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(remaining).To(HaveLen(1))
		})

		It("should report zero rows for an absent key", func() {
			removed, err := s.MedicalRecords().DeleteByKey(ctx, models.DocumentKey{
				PersonnelID:  9,
				DocumentName: "nothing.pdf",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeZero())
		})
	})
})
