package connection

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormHandle(t *testing.T) *gorm.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)
	return gdb
}

func resetSharedDB(t *testing.T) {
	t.Helper()
	sharedDB.Store(nil)
	t.Cleanup(func() { sharedDB.Store(nil) })
}

func TestGetSharedDB_ConcurrentCallersShareOneDial(t *testing.T) {
	resetSharedDB(t)

	handle := newGormHandle(t)
	var dials int32
	dial := func() (*gorm.DB, error) {
		atomic.AddInt32(&dials, 1)
		return handle, nil
	}

	const callers = 16
	results := make([]*gorm.DB, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := getSharedDB(dial)
			assert.NoError(t, err)
			results[i] = db
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&dials))
	for _, db := range results {
		assert.Same(t, handle, db)
	}
}

func TestGetSharedDB_DialFailureNotCached(t *testing.T) {
	resetSharedDB(t)

	dialErr := errors.New("connection refused")
	_, err := getSharedDB(func() (*gorm.DB, error) { return nil, dialErr })
	assert.ErrorIs(t, err, dialErr)

	// Gagal dial tidak boleh nyangkut; pemanggilan berikutnya dial ulang
	handle := newGormHandle(t)
	db, err := getSharedDB(func() (*gorm.DB, error) { return handle, nil })
	assert.NoError(t, err)
	assert.Same(t, handle, db)
}
