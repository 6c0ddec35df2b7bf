package repositories

import (
	"time"

	"github.com/white/lead-management/pkg/mongodb"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var fixedNow = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

func mockOpts() *mtest.Options {
	return mtest.NewOptions().ClientType(mtest.Mock)
}

func clientFor(mt *mtest.T) *mongodb.Client {
	return mongodb.FromDatabase(mt.DB)
}

func ns(mt *mtest.T, coll string) string {
	return mt.DB.Name() + "." + coll
}

func fixedClock() time.Time { return fixedNow }
