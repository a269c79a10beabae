package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"gorm.io/gorm"

	entity "warehouse.GO/model/entity"
	skuRepo "warehouse.GO/model/repository/sku"
)

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns the singleton SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService()
	})
	return searchServiceInstance
}

// SearchService finds SKUs by number or description. Elasticsearch
// when configured, LIKE queries otherwise. Like the movement detail
// strategies, the choice never changes result semantics.
type SearchService struct {
	client *elasticsearch.Client
	index  string
}

func NewSearchService() *SearchService {
	host := os.Getenv("ELASTICSEARCH_HOST")
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "warehouse_wh_sku"
	}
	if host == "" {
		return &SearchService{index: index}
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{host}})
	if err != nil {
		return &SearchService{index: index}
	}
	return &SearchService{client: client, index: index}
}

// SearchSkus returns active SKUs matching the query. ES errors fall
// back to the database silently.
func (s *SearchService) SearchSkus(ctx context.Context, db *gorm.DB, query string, limit int) ([]entity.SKU, error) {
	if limit <= 0 {
		limit = 20
	}
	if s.client == nil {
		return skuRepo.NewSkuRepository(db).FindByPattern(query, limit)
	}
	skus, err := s.searchES(ctx, db, query, limit)
	if err != nil {
		return skuRepo.NewSkuRepository(db).FindByPattern(query, limit)
	}
	return skus, nil
}

func (s *SearchService) searchES(ctx context.Context, db *gorm.DB, query string, limit int) ([]entity.SKU, error) {
	body := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"sku_num^3", "description"},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					SkuNum string `json:"sku_num"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	skuNums := make([]string, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		if h.Source.SkuNum != "" {
			skuNums = append(skuNums, h.Source.SkuNum)
		}
	}
	if len(skuNums) == 0 {
		return []entity.SKU{}, nil
	}

	var skus []entity.SKU
	err = db.Where("sku_num IN ? AND status = ?", skuNums, entity.SkuStatusActive).Find(&skus).Error
	return skus, err
}
