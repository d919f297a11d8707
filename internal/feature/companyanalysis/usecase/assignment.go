package usecase

import "company_analyzer/internal/feature/companyanalysis/domain/entity"

// ResolveTeam はセクターの集合から担当メンバーを決めます。上から順に評価し、最初に一致したものを返します。
//
// 組み合わせのルール（2番目と3番目）は単独のルールに包含されるが、判定順序は変えないこと。
func ResolveTeam(sectors []string) string {
	if len(sectors) == 0 {
		return entity.MemberUnassigned
	}

	set := make(map[string]struct{}, len(sectors))
	for _, s := range sectors {
		set[s] = struct{}{}
	}
	has := func(s string) bool {
		_, ok := set[s]
		return ok
	}

	switch {
	case has(entity.SectorK12) && has(entity.SectorHigherEducation):
		return entity.MemberMitch
	case has(entity.SectorWorkforceLearning) && has(entity.SectorCorporateDevelopment):
		return entity.MemberSam
	case has(entity.SectorK12) || has(entity.SectorHigherEducation):
		return entity.MemberMitch
	case has(entity.SectorWorkforceLearning) || has(entity.SectorCorporateDevelopment):
		return entity.MemberSam
	default:
		return entity.MemberUnassigned
	}
}
