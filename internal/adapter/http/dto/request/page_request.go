package request

import "oficina_mecanica/internal/usecase/interfaces"

// PageQuery is the skip/limit window accepted by every list endpoint.
type PageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=5" binding:"min=1,max=100"`
}

func (q PageQuery) ToPage() interfaces.Page {
	return interfaces.Page{Skip: q.Skip, Limit: q.Limit}
}
