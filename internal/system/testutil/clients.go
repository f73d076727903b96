/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const clientTimeout = 10 * time.Second

// NewMongoDatabase connects to the shared MongoDB container and returns a fresh database
// that is dropped when the test finishes.
func NewMongoDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := GetMongoURI(t)

	ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}))
	if err != nil {
		t.Fatalf("failed to connect to MongoDB: %v", err)
	}

	name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	db := mongoClient.Database(name)
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cleanupCancel()
		_ = db.Drop(cleanupCtx)
		_ = mongoClient.Disconnect(cleanupCtx)
	})
	return db
}

// NewRedisClient connects to the shared Redis container. Keys written by the test should use
// KeyPrefix to stay isolated from other tests.
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := GetRedisAddr(t)

	redisClient := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		t.Fatalf("failed to ping Redis: %v", err)
	}
	t.Cleanup(func() { _ = redisClient.Close() })
	return redisClient
}

// KeyPrefix returns a key prefix unique to a test run.
func KeyPrefix() string {
	return fmt.Sprintf("test:%s", uuid.NewString())
}
