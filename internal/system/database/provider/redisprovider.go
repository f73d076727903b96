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

package provider

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/log"
)

// RedisProviderInterface defines the interface for getting Redis clients.
type RedisProviderInterface interface {
	GetRedisClient(dataSourceName string) (redis.UniversalClient, error)
	Close() error
}

// RedisProvider is the implementation of RedisProviderInterface.
type RedisProvider struct {
	clients map[string]*redis.Client
	mutex   sync.Mutex
}

var (
	redisInstance *RedisProvider
	redisOnce     sync.Once
)

// GetRedisProvider returns the instance of RedisProvider.
func GetRedisProvider() RedisProviderInterface {
	redisOnce.Do(func() {
		redisInstance = &RedisProvider{
			clients: make(map[string]*redis.Client),
		}
	})
	return redisInstance
}

// GetRedisClient returns the client of the named data source, connecting on first use.
func (r *RedisProvider) GetRedisClient(dataSourceName string) (redis.UniversalClient, error) {
	dataSource, err := getDataSource(dataSourceName)
	if err != nil {
		return nil, err
	}
	if dataSource.Type != config.DataSourceTypeRedis {
		return nil, fmt.Errorf("data source %s is of type %s, not redis", dataSourceName, dataSource.Type)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if redisClient, ok := r.clients[dataSourceName]; ok {
		return redisClient, nil
	}

	opts, err := buildRedisOptions(dataSource)
	if err != nil {
		return nil, fmt.Errorf("invalid redis configuration for %s: %w", dataSourceName, err)
	}
	redisClient := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), dataSource.Timeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to ping data source %s: %w", dataSourceName, err)
	}

	r.clients[dataSourceName] = redisClient
	log.GetLogger().Debug("Connected to Redis", log.String(log.LoggerKeyComponentName, "RedisProvider"),
		log.String("dataSource", dataSourceName))
	return redisClient, nil
}

// Close closes every opened client.
func (r *RedisProvider) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var errs []error
	for name, redisClient := range r.clients {
		if err := redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s client: %w", name, err))
		}
		delete(r.clients, name)
	}
	return errors.Join(errs...)
}

// buildRedisOptions builds the client options from the uri, or from the discrete fields when no uri is set.
// The database name selects the logical redis database number.
func buildRedisOptions(dataSource config.DataSource) (*redis.Options, error) {
	var opts *redis.Options
	if dataSource.URI != "" {
		parsed, err := redis.ParseURL(dataSource.URI)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     fmt.Sprintf("%s:%d", dataSource.Hostname, dataSource.Port),
			Username: dataSource.Username,
			Password: dataSource.Password,
		}
		if dataSource.Name != "" {
			db, err := strconv.Atoi(dataSource.Name)
			if err != nil {
				return nil, fmt.Errorf("redis database name must be a number: %w", err)
			}
			opts.DB = db
		}
	}

	if dataSource.Password != "" && opts.Password == "" {
		opts.Password = dataSource.Password
	}
	if dataSource.MaxOpenConns > 0 {
		opts.PoolSize = dataSource.MaxOpenConns
	}
	if dataSource.Timeout > 0 {
		opts.ReadTimeout = dataSource.Timeout
		opts.WriteTimeout = dataSource.Timeout
	}
	return opts, nil
}
