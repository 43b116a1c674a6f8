package store_test

import (
	"context"
	"database/sql"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	"github.com/firehall/personnel-agent/internal/store/migrations"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

func TestStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Store Suite")
}

func mustID(rec models.Record) int64 {
	id, ok := rec.ID()
	ExpectWithOffset(1, ok).To(BeTrue(), "record has no usable id")
	return id
}

var _ = Describe("RecordStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

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

	Context("GetAll", func() {
		// Given an empty collection
		// When we list it
		// Then it should return an empty slice, not nil
		It("should return an empty slice for an empty collection", func() {
			// Act
			records, err := s.Records().GetAll(ctx, store.CollectionInventory)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(records).NotTo(BeNil())
			Expect(records).To(BeEmpty())
		})

		// Given several stored records
		// When we list the collection
		// Then records should come back in key order
		It("should return records in key order", func() {
			// Arrange
			for _, name := range []string{"ladder", "hose", "axe"} {
				_, err := s.Records().Add(ctx, store.CollectionInventory, models.Record{"name": name})
				Expect(err).NotTo(HaveOccurred())
			}

			// Act
			records, err := s.Records().GetAll(ctx, store.CollectionInventory)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0].String("name")).To(Equal("ladder"))
			Expect(records[1].String("name")).To(Equal("hose"))
			Expect(records[2].String("name")).To(Equal("axe"))
		})

		It("should reject unknown collections", func() {
			_, err := s.Records().GetAll(ctx, "no_such_collection")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Add", func() {
		// Given an empty collection
		// When we add records
		// Then keys should be assigned sequentially starting at 1
		It("should assign sequential keys", func() {
			// Act
			first, err := s.Records().Add(ctx, store.CollectionTrainings, models.Record{"name": "CPR"})
			Expect(err).NotTo(HaveOccurred())
			second, err := s.Records().Add(ctx, store.CollectionTrainings, models.Record{"name": "Hazmat"})
			Expect(err).NotTo(HaveOccurred())

			// Assert
			Expect(mustID(first)).To(Equal(int64(1)))
			Expect(mustID(second)).To(Equal(int64(2)))
		})

		// Given a new personnel record without documents
		// When it is added
		// Then the stored record should carry an empty documents array
		It("should default personnel documents to an empty array", func() {
			// Act
			rec, err := s.Records().Add(ctx, store.CollectionPersonnel, models.Record{
				"first_name": "Dana",
				"last_name":  "Reyes",
			})
			Expect(err).NotTo(HaveOccurred())

			// Assert
			docs := rec.Documents()
			Expect(docs).NotTo(BeNil())
			Expect(docs).To(BeEmpty())

			stored, err := s.Records().Get(ctx, store.CollectionPersonnel, mustID(rec))
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveKey("documents"))
		})

		// Given a record that already carries documents
		// When it is added
		// Then the existing documents must be preserved
		It("should not overwrite existing documents", func() {
			rec, err := s.Records().Add(ctx, store.CollectionPersonnel, models.Record{
				"first_name": "Lee",
				"documents":  []any{map[string]any{"name": "physical.pdf"}},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Documents()).To(HaveLen(1))
		})

		// Keys are assigned by the store; a caller-provided id is ignored.
		It("should ignore a caller-provided id", func() {
			rec, err := s.Records().Add(ctx, store.CollectionInventory, models.Record{
				"id":   int64(99),
				"name": "pump",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mustID(rec)).To(Equal(int64(1)))
		})
	})

	Context("Get", func() {
		It("should return ResourceNotFoundError for a missing key", func() {
			_, err := s.Records().Get(ctx, store.CollectionInventory, 42)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Update", func() {
		// Given a stored record
		// When we update it with a changed document
		// Then the whole document is replaced under the same key
		It("should replace the record under its key", func() {
			// Arrange
			rec, err := s.Records().Add(ctx, store.CollectionInventory, models.Record{
				"name":   "hose",
				"status": "Available",
			})
			Expect(err).NotTo(HaveOccurred())

			// Act
			rec["status"] = "In Maintenance"
			delete(rec, "name")
			updated, err := s.Records().Update(ctx, store.CollectionInventory, rec)
			Expect(err).NotTo(HaveOccurred())

			// Assert: replaced, not merged
			Expect(updated.String("status")).To(Equal("In Maintenance"))
			stored, err := s.Records().Get(ctx, store.CollectionInventory, mustID(rec))
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).NotTo(HaveKey("name"))
		})

		// Put semantics: updating a key with no row creates the row.
		It("should insert when the key does not exist yet", func() {
			updated, err := s.Records().Update(ctx, store.CollectionInventory, models.Record{
				"id":   int64(7),
				"name": "ladder",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mustID(updated)).To(Equal(int64(7)))

			stored, err := s.Records().Get(ctx, store.CollectionInventory, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.String("name")).To(Equal("ladder"))
		})

		It("should return MissingKeyError when the record has no id", func() {
			_, err := s.Records().Update(ctx, store.CollectionInventory, models.Record{"name": "axe"})
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsMissingKeyError(err)).To(BeTrue())
		})
	})

	Context("Delete", func() {
		var rec models.Record

		BeforeEach(func() {
			var err error
			rec, err = s.Records().Add(ctx, store.CollectionInventory, models.Record{"name": "hose"})
			Expect(err).NotTo(HaveOccurred())
		})

		// The key may arrive as a number, a numeric string, or the record
		// itself; all of them address the same row.
		It("should accept an integer key", func() {
			Expect(s.Records().Delete(ctx, store.CollectionInventory, mustID(rec))).To(Succeed())
			_, err := s.Records().Get(ctx, store.CollectionInventory, mustID(rec))
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should accept a numeric string key", func() {
			Expect(s.Records().Delete(ctx, store.CollectionInventory, "1")).To(Succeed())
			_, err := s.Records().Get(ctx, store.CollectionInventory, 1)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should accept a whole float key", func() {
			Expect(s.Records().Delete(ctx, store.CollectionInventory, float64(1))).To(Succeed())
			_, err := s.Records().Get(ctx, store.CollectionInventory, 1)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should accept the record itself as key", func() {
			Expect(s.Records().Delete(ctx, store.CollectionInventory, rec)).To(Succeed())
			_, err := s.Records().Get(ctx, store.CollectionInventory, mustID(rec))
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return InvalidKeyError for a non-numeric key", func() {
			err := s.Records().Delete(ctx, store.CollectionInventory, "not-a-key")
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsInvalidKeyError(err)).To(BeTrue())
		})

		It("should be a no-op for an absent key", func() {
			Expect(s.Records().Delete(ctx, store.CollectionInventory, 9999)).To(Succeed())
		})
	})

	Context("FindByField", func() {
		BeforeEach(func() {
			for _, rec := range []models.Record{
				{"username": "jdoe", "rank": "Captain"},
				{"username": "asmith", "rank": "Firefighter"},
				{"username": "bjones", "rank": "Captain"},
			} {
				_, err := s.Records().Add(ctx, store.CollectionPersonnel, rec)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should return all records matching the field value", func() {
			records, err := s.Records().FindByField(ctx, store.CollectionPersonnel, "rank", "Captain")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
		})

		It("should return an empty slice when nothing matches", func() {
			records, err := s.Records().FindByField(ctx, store.CollectionPersonnel, "username", "nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).NotTo(BeNil())
			Expect(records).To(BeEmpty())
		})
	})
})
