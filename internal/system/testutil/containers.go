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

// Package testutil starts shared containers for store integration tests.
// Tests are skipped when no container runtime is available.
package testutil

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 2 * time.Minute

type sharedContainer struct {
	once     sync.Once
	endpoint string
	err      error
}

var (
	mongoContainer sharedContainer
	redisContainer sharedContainer
)

// GetMongoURI returns the URI of a shared MongoDB container.
func GetMongoURI(t *testing.T) string {
	t.Helper()

	mongoContainer.once.Do(func() {
		hostPort, err := startContainer("mongo:7", "27017/tcp")
		mongoContainer.endpoint, mongoContainer.err = "mongodb://"+hostPort, err
	})
	if mongoContainer.err != nil {
		t.Skipf("skipping MongoDB tests: %v", mongoContainer.err)
	}
	return mongoContainer.endpoint
}

// GetRedisAddr returns the host:port address of a shared Redis container.
func GetRedisAddr(t *testing.T) string {
	t.Helper()

	redisContainer.once.Do(func() {
		redisContainer.endpoint, redisContainer.err = startContainer("redis:7-alpine", "6379/tcp")
	})
	if redisContainer.err != nil {
		t.Skipf("skipping Redis tests: %v", redisContainer.err)
	}
	return redisContainer.endpoint
}

// startContainer runs the image and returns the host:port of the exposed port.
// The container is left running until the test process exits.
func startContainer(image, port string) (hostPort string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("starting %s container panicked: %v", image, r)
		}
	}()

	container, err := testcontainers.Run(
		ctx, image,
		testcontainers.WithExposedPorts(port),
		testcontainers.WithWaitStrategy(
			wait.ForExposedPort().WithStartupTimeout(startupTimeout),
		),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start %s container: %w", image, err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		_ = container.Terminate(context.Background())
		return "", fmt.Errorf("failed to get container endpoint: %w", err)
	}

	// Avoid [::1]:port resolution problems.
	host, mappedPort, err := net.SplitHostPort(endpoint)
	if err != nil {
		_ = container.Terminate(context.Background())
		return "", fmt.Errorf("invalid container endpoint %q: %w", endpoint, err)
	}
	if host == "" || host == "localhost" || host == "::1" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, mappedPort), nil
}
