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

package utils

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UUIDUtilTestSuite struct {
	suite.Suite
}

func TestUUIDUtilSuite(t *testing.T) {
	suite.Run(t, new(UUIDUtilTestSuite))
}

func (suite *UUIDUtilTestSuite) TestGenerateUUIDIsRandomVersion() {
	id := GenerateUUID()

	parsed, err := uuid.Parse(id)
	suite.Require().NoError(err)
	suite.Equal(uuid.Version(4), parsed.Version())
	suite.Equal(uuid.RFC4122, parsed.Variant())
	suite.Equal(parsed.String(), id, "ids are stored in canonical lower case form")
}

func (suite *UUIDUtilTestSuite) TestGenerateUUIDFitsIDColumns() {
	// FORM_ID and EVENT_ID are VARCHAR(36).
	suite.Len(GenerateUUID(), 36)
}

func (suite *UUIDUtilTestSuite) TestGenerateUUIDNeverRepeatsAcrossGoroutines() {
	const workers, perWorker = 8, 250

	var wg sync.WaitGroup
	results := make([][]string, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results[w] = append(results[w], GenerateUUID())
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[string]struct{}, workers*perWorker)
	for _, ids := range results {
		for _, id := range ids {
			_, dup := seen[id]
			suite.Falsef(dup, "id %s was generated twice", id)
			seen[id] = struct{}{}
		}
	}
	suite.Len(seen, workers*perWorker)
}
