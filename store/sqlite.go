package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"sort"
	"time"

	"github.com/glebarez/sqlite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"laundry-delivery-api/codec"
)

// documentRow keeps one document per row; Body is the BSON encoding so
// identifiers and datetimes survive a round trip with their native types.
type documentRow struct {
	ID         string `gorm:"primaryKey;size:24"`
	Collection string `gorm:"index;not null"`
	Body       []byte `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

// SQLiteStore is an embedded document backend on top of GORM
type SQLiteStore struct {
	db   *gorm.DB
	name string
}

func OpenSQLite(dsn, name string) (*SQLiteStore, error) {
	return openSQLite(dsn, name, os.Stdout)
}

// gormLogger reports slow queries and real errors only; a missing
// document is an ordinary 404, not a database error
func gormLogger(w io.Writer) logger.Interface {
	return logger.New(log.New(w, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func openSQLite(dsn, name string, logOut io.Writer) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger(logOut),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}
	return &SQLiteStore{db: db, name: name}, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, collection string, doc codec.Document) (primitive.ObjectID, error) {
	oid := primitive.NewObjectID()
	if v, ok := doc.Get(codec.IDField); ok {
		id, isOID := v.(primitive.ObjectID)
		if !isOID {
			return primitive.NilObjectID, fmt.Errorf("unsupported _id type %T", v)
		}
		oid = id
	} else {
		doc = append(codec.Document{{Key: codec.IDField, Value: oid}}, doc...)
	}
	body, err := bson.Marshal(doc.BSON())
	if err != nil {
		return primitive.NilObjectID, err
	}
	row := documentRow{ID: oid.Hex(), Collection: collection, Body: body}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return primitive.NilObjectID, err
	}
	return oid, nil
}

func (s *SQLiteStore) Find(ctx context.Context, collection string, filter Filter, limit int64) ([]codec.Document, error) {
	rows, err := s.db.WithContext(ctx).Model(&documentRow{}).Where("collection = ?", collection).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []codec.Document{}
	for rows.Next() {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		var row documentRow
		if err := s.db.ScanRows(rows, &row); err != nil {
			return nil, err
		}
		doc, err := unmarshalBody(row.Body)
		if err != nil {
			return nil, err
		}
		if matches(doc, filter) {
			docs = append(docs, doc)
		}
	}
	return docs, rows.Err()
}

func (s *SQLiteStore) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (codec.Document, error) {
	var row documentRow
	err := s.db.WithContext(ctx).Where("id = ? AND collection = ?", id.Hex(), collection).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return unmarshalBody(row.Body)
}

func (s *SQLiteStore) Update(ctx context.Context, collection string, id primitive.ObjectID, set codec.Document) (codec.Document, error) {
	var updated codec.Document
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row documentRow
		err := tx.Where("id = ? AND collection = ?", id.Hex(), collection).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		doc, err := unmarshalBody(row.Body)
		if err != nil {
			return err
		}
		for _, f := range set {
			doc.Set(f.Key, f.Value)
		}
		body, err := bson.Marshal(doc.BSON())
		if err != nil {
			return err
		}
		if err := tx.Model(&row).Update("body", body).Error; err != nil {
			return err
		}
		// re-read through BSON so callers see stored types, not the inputs
		updated, err = unmarshalBody(body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SQLiteStore) Name() string { return s.name }

func (s *SQLiteStore) CollectionNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&documentRow{}).Distinct().Pluck("collection", &names).Error
	sort.Strings(names)
	return names, err
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLiteStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func unmarshalBody(body []byte) (codec.Document, error) {
	var d bson.D
	if err := bson.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("corrupt document body: %w", err)
	}
	return codec.FromBSON(d), nil
}

func matches(doc codec.Document, filter Filter) bool {
	for key, want := range filter {
		got, ok := doc.Get(key)
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
