package entity

// 教育セクターのラベル。
const (
	SectorK12                  = "K-12"
	SectorHigherEducation      = "Higher Education"
	SectorWorkforceLearning    = "Workforce Learning"
	SectorCorporateDevelopment = "Corporate Development"
	SectorOther                = "Other"
)

// チームメンバー。
const (
	MemberMitch      = "Mitch"
	MemberSam        = "Sam"
	MemberUnassigned = "To be assigned"
)

// AssignmentRule は画面に表示する割り当てルールの1行です。
type AssignmentRule struct {
	Sectors string `json:"sectors"`
	Member  string `json:"member"`
}

// AssignmentTable は表示専用の割り当て表です。実際の判定はusecase.ResolveTeamが行います。
var AssignmentTable = []AssignmentRule{
	{Sectors: SectorK12, Member: MemberMitch},
	{Sectors: SectorHigherEducation, Member: MemberMitch},
	{Sectors: "K-12 + Higher Education", Member: MemberMitch},
	{Sectors: SectorWorkforceLearning, Member: MemberSam},
	{Sectors: SectorCorporateDevelopment, Member: MemberSam},
	{Sectors: "Workforce + Corporate", Member: MemberSam},
	{Sectors: SectorOther, Member: MemberUnassigned},
}
