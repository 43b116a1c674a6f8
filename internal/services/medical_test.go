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

var _ = Describe("MedicalRecordService", func() {
	var (
		ctx       context.Context
		s         *store.Store
		svc       *services.MedicalRecordService
		personnel models.Record
	)

	upload := func(name, recordType string) *models.MedicalRecord {
		id, _ := personnel.ID()
		rec, err := svc.Upload(ctx, services.UploadParams{
			PersonnelID:  id,
			DocumentName: name,
			RecordType:   recordType,
			FileType:     "application/pdf",
			Data:         []byte("%PDF-1.4"),
		})
		Expect(err).NotTo(HaveOccurred())
		return rec
	}

	BeforeEach(func() {
		ctx = context.Background()
		s = newTestStore(ctx)
		svc = services.NewMedicalRecordService(s)

		var err error
		personnel, err = s.Records().Add(ctx, store.CollectionPersonnel, models.Record{
			"first_name": "Dana",
			"last_name":  "Reyes",
			"rank":       "Captain",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		s.Close()
	})

	Describe("Upload", func() {
		// Given an upload for an existing member
		// When it is stored
		// Then a document entry is mirrored into personnel.documents
		It("should mirror a document entry into the personnel record", func() {
			// Act
			upload("physical.pdf", "Checkup")

			// Assert
			id, _ := personnel.ID()
			stored, err := s.Records().Get(ctx, store.CollectionPersonnel, id)
			Expect(err).NotTo(HaveOccurred())

			docs := stored.Documents()
			Expect(docs).To(HaveLen(1))
			Expect(docs[0].Name).To(Equal("physical.pdf"))
			Expect(docs[0].Category).To(Equal(models.MedicalCategory))
		})

		It("should leave the collections converged for the reconciler", func() {
			upload("physical.pdf", "Checkup")

			report, err := services.NewReconciler(s).Sync(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Added).To(BeZero())
			Expect(report.Removed).To(BeZero())
		})

		// Given a stored document
		// When the same name is uploaded again for the same member
		// Then the previous record is replaced, not duplicated
		It("should replace the record on a re-upload under the same name", func() {
			// Arrange
			first := upload("physical.pdf", "Checkup")
			id, _ := personnel.ID()

			// Act
			second, err := svc.Upload(ctx, services.UploadParams{
				PersonnelID:  id,
				DocumentName: "physical.pdf",
				RecordType:   "Checkup",
				FileType:     "application/pdf",
				Data:         []byte("%PDF-1.4 v2"),
			})
			Expect(err).NotTo(HaveOccurred())

			// Assert
			records, err := svc.ListByPersonnel(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].ID).To(Equal(second.ID))
			Expect(records[0].ID).NotTo(Equal(first.ID))

			got, err := svc.Download(ctx, second.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.FileData).To(Equal([]byte("%PDF-1.4 v2")))
		})

		It("should stay at one record per document across a sync pass", func() {
			upload("physical.pdf", "Checkup")
			upload("physical.pdf", "Checkup")

			report, err := services.NewReconciler(s).Sync(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Added).To(BeZero())
			Expect(report.Removed).To(BeZero())

			id, _ := personnel.ID()
			records, err := svc.ListByPersonnel(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
		})

		It("should infer the record type from the name when omitted", func() {
			rec := upload("dental cleaning.pdf", "")
			Expect(rec.RecordType).To(Equal(models.RecordTypeDental))
		})

		It("should reject an unknown record type", func() {
			id, _ := personnel.ID()
			_, err := svc.Upload(ctx, services.UploadParams{
				PersonnelID:  id,
				DocumentName: "doc.pdf",
				RecordType:   "Horoscope",
			})
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		It("should reject an upload for a missing member", func() {
			_, err := svc.Upload(ctx, services.UploadParams{
				PersonnelID:  999,
				DocumentName: "doc.pdf",
			})
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should record the payload size", func() {
			rec := upload("physical.pdf", "Checkup")
			Expect(rec.FileSize).To(Equal(int64(8)))
		})
	})

	Describe("Download", func() {
		It("should return the stored payload", func() {
			rec := upload("physical.pdf", "Checkup")

			got, err := svc.Download(ctx, rec.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.FileData).To(Equal([]byte("%PDF-1.4")))
		})
	})

	Describe("Delete", func() {
		// Given a stored record with its mirrored document
		// When the record is deleted
		// Then the personnel document entry goes away too
		It("should remove the mirrored document entry", func() {
			rec := upload("physical.pdf", "Checkup")

			Expect(svc.Delete(ctx, rec.ID)).To(Succeed())

			id, _ := personnel.ID()
			stored, err := s.Records().Get(ctx, store.CollectionPersonnel, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Documents()).To(BeEmpty())
		})

		It("should be a no-op for an unknown id", func() {
			Expect(svc.Delete(ctx, "00000000-0000-0000-0000-000000000000")).To(Succeed())
		})
	})

	Describe("GetMedicalRecordsWithPersonnel", func() {
		It("should join the personnel display fields", func() {
			upload("physical.pdf", "Checkup")

			views, err := svc.GetMedicalRecordsWithPersonnel(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(1))
			Expect(views[0].PersonnelName).To(Equal("Dana Reyes"))
			Expect(views[0].PersonnelRank).To(Equal("Captain"))
		})

		// Records pointing at deleted personnel still list, with a
		// placeholder name.
		It("should fall back to Unknown for missing personnel", func() {
			upload("physical.pdf", "Checkup")

			id, _ := personnel.ID()
			Expect(s.Records().Delete(ctx, store.CollectionPersonnel, id)).To(Succeed())

			views, err := svc.GetMedicalRecordsWithPersonnel(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(1))
			Expect(views[0].PersonnelName).To(Equal(models.UnknownName))
		})
	})
})
