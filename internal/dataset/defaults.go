package dataset

// Built-in sample data used when no workbook has been uploaded. The values
// are real-shaped ISO/IEC 17021-1 accreditation findings; headers are the
// canonical English names while cell values keep the original Korean text.

// DefaultFindings returns a fresh copy of the built-in findings table.
func DefaultFindings() Table {
	t := NewTable("인정기준", "clause", "subclause", "category", "content")
	rows := []Row{
		{"인정기준": "KAB-R-MSCB", "clause": "7", "subclause": "7.1", "category": "부적합", "content": "조직은 품질경영시스템 자원의 충분성을 확보하지 못함."},
		{"인정기준": "KAB-R-MSCB", "clause": "7.1", "subclause": "7.1.1", "category": "권고", "content": "프로세스 운영계획서에 인원 배치가 미흡함."},
		{"인정기준": "KAB-R-MSCB", "clause": "7.2", "subclause": "7.1.2", "category": "부적합", "content": "고객 요구사항 검토 절차 미이행."},
		{"인정기준": "KAB-R-MSCB", "clause": "8.3", "subclause": "8.3.1", "category": "권고", "content": "변경관리 절차서가 최신화되어 있지 않음."},
		{"인정기준": "KAB-R-MSCB", "clause": "9.1", "subclause": "9.1.1", "category": "부적합", "content": "내부심사 계획이 적시에 수립되지 않음."},
		{"인정기준": "KAB-R-MSCB", "clause": "9.2", "subclause": "9.2.2", "category": "권고", "content": "고객만족도 조사 절차 개선 필요."},
	}
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

// DefaultStandards returns a fresh copy of the built-in clause requirement
// table.
func DefaultStandards() Table {
	t := NewTable("조항", "요구사항")
	rows := []Row{
		{"조항": "7", "요구사항": "조직은 필요한 자원을 결정하고 제공해야 한다."},
		{"조항": "7.1", "요구사항": "조직은 인프라를 포함한 필요한 자원을 제공해야 한다."},
		{"조항": "7.2", "요구사항": "조직은 인적 자원의 역량을 보장해야 한다."},
		{"조항": "8.3", "요구사항": "제품 및 서비스 설계개발을 관리해야 한다."},
		{"조항": "9.1", "요구사항": "모니터링 및 측정을 통해 시스템 성과를 평가해야 한다."},
		{"조항": "9.2", "요구사항": "내부심사를 계획하고 실시해야 한다."},
	}
	for _, r := range rows {
		t.Append(r)
	}
	return t
}
