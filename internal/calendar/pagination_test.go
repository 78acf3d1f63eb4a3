package calendar

import "testing"

func TestPaginate_MiddlePage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page := Paginate(items, 2, 10)

	if len(page.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(page.Items))
	}
	if page.Items[0] != 10 {
		t.Fatalf("expected first item 10, got %d", page.Items[0])
	}
	if !page.HasNext || !page.HasPrev {
		t.Fatalf("expected HasNext and HasPrev, got %+v", page)
	}
	if page.Total != 25 {
		t.Fatalf("expected total 25, got %d", page.Total)
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page := Paginate(items, 2, 3)

	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Items))
	}
	if page.HasNext {
		t.Fatalf("expected no next page")
	}
	if !page.HasPrev {
		t.Fatalf("expected previous page")
	}
}

func TestPaginate_OutOfRangePage(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 10, 10)

	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(page.Items))
	}
}

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 40)

	page := Paginate(items, 0, 0)

	if page.Page != 1 {
		t.Fatalf("expected page 1, got %d", page.Page)
	}
	if page.PageSize != 30 {
		t.Fatalf("expected default page size 30, got %d", page.PageSize)
	}
	if len(page.Items) != 30 {
		t.Fatalf("expected 30 items, got %d", len(page.Items))
	}
}
