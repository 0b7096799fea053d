package util

import (
	"strconv"
)

// Pagination 分页信息，供模板渲染分页控件
type Pagination struct {
	Number     int
	PageSize   int
	TotalItems int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
	NextPage   int
	PrevPage   int
}

// Paginate 解析并归一化页码参数：非整数回退到第一页，超出范围回退到最后一页
func Paginate(raw string, pageSize int, totalItems int64) *Pagination {
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		page = 1
	} else if page < 1 || page > totalPages {
		page = totalPages
	}

	return &Pagination{
		Number:     page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		NextPage:   page + 1,
		PrevPage:   page - 1,
	}
}

// Offset 当前页在查询中的偏移量
func (p *Pagination) Offset() int {
	return (p.Number - 1) * p.PageSize
}
